package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndFind(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.AppendRow(ctx, Users, []string{"1", "", "Abebe"}))
	require.NoError(t, s.AppendRow(ctx, Users, []string{"2", "", "Sara"}))

	idx, row, err := s.FindRow(ctx, Users, "2")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, []string{"2", "", "Sara"}, row)

	_, _, err = s.FindRow(ctx, Users, "3")
	assert.ErrorIs(t, err, ErrRowNotFound)

	_, _, err = s.FindRow(ctx, TrainingSignups, "1")
	assert.ErrorIs(t, err, ErrRowNotFound, "collections are independent")
}

func TestMemoryStoreUpdateCell(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.AppendRow(ctx, Users, []string{"1", "", "Abebe"}))
	require.NoError(t, s.UpdateCell(ctx, Users, 1, 3, "Almaz"))

	_, row, err := s.FindRow(ctx, Users, "1")
	require.NoError(t, err)
	assert.Equal(t, "Almaz", row[2])

	// Updating past the current width pads with empty cells.
	require.NoError(t, s.UpdateCell(ctx, Users, 1, 6, "x"))
	_, row, err = s.FindRow(ctx, Users, "1")
	require.NoError(t, err)
	require.Len(t, row, 6)
	assert.Equal(t, "", row[4])
	assert.Equal(t, "x", row[5])

	assert.Error(t, s.UpdateCell(ctx, Users, 2, 1, "nope"))
	assert.Error(t, s.UpdateCell(ctx, Users, 0, 1, "nope"))
}

func TestMemoryStoreRowsReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.AppendRow(ctx, Companies, []string{"a", "b"}))

	rows, err := s.Rows(ctx, Companies)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	rows[0][0] = "mutated"

	again, err := s.Rows(ctx, Companies)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0][0])
}
