package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 1, c.Version())
	assert.Len(t, c.Upcoming(), 2)
	assert.Len(t, c.Past(), 3)
	assert.Len(t, c.Modules(), 3)
	assert.True(t, c.HasCategory("Marketing"))
	assert.False(t, c.HasCategory("Logistics"))

	mod, ok := c.Module(3)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, mod.Prereq)
	assert.Len(t, mod.Quiz, 3)

	_, ok = c.Module(99)
	assert.False(t, ok)
}

func TestWithCategoryCopiesOnWrite(t *testing.T) {
	base := Default()

	next := base.WithCategory("Logistics")
	assert.Equal(t, base.Version()+1, next.Version())
	assert.True(t, next.HasCategory("Logistics"))
	assert.False(t, base.HasCategory("Logistics"), "receiver must stay unchanged")
	assert.Equal(t, base.Modules(), next.Modules())
}

func TestWithCategoryNoOpCases(t *testing.T) {
	base := Default()

	assert.Same(t, base, base.WithCategory(""))
	assert.Same(t, base, base.WithCategory("Marketing"))
}
