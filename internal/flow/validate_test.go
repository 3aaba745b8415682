package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"+251911234567", true},
		{"+251711234567", true},
		{"0911234567", true},
		{"0711234567", true},
		{"  0911234567  ", true},
		{"+251811234567", false},
		{"0811234567", false},
		{"091123456", false},
		{"09112345678", false},
		{"abc", false},
		{"", false},
		{"+1 555 0100", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPhone(tc.input), "input %q", tc.input)
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"a@b.com", true},
		{"user.name@sub.example.org", true},
		{" a@b.co ", true},
		{"@b.com", false},
		{"a@bcom", false},
		{"a@b.", false},
		{"a@.com", false},
		{"plain", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidEmail(tc.input), "input %q", tc.input)
	}
}

func TestValidRating(t *testing.T) {
	for _, ok := range []string{"1", "3", "5", " 4 "} {
		assert.True(t, ValidRating(ok), "input %q", ok)
	}
	for _, bad := range []string{"0", "6", "10", "five", ""} {
		assert.False(t, ValidRating(bad), "input %q", bad)
	}
}

func TestValidYesNo(t *testing.T) {
	for _, ok := range []string{"Yes", "no", "YES", "አዎ", "አይ", " yes "} {
		assert.True(t, ValidYesNo(ok), "input %q", ok)
	}
	for _, bad := range []string{"maybe", "y", "", "ok"} {
		assert.False(t, ValidYesNo(bad), "input %q", bad)
	}
}

func TestValidDone(t *testing.T) {
	for _, ok := range []string{"done", "Done", "DONE", " done "} {
		assert.True(t, ValidDone(ok), "input %q", ok)
	}
	for _, bad := range []string{"", "done done", "finished", "Marketing"} {
		assert.False(t, ValidDone(bad), "input %q", bad)
	}
}

func TestNormalizeYesNo(t *testing.T) {
	assert.Equal(t, "Yes", normalizeYesNo("yes"))
	assert.Equal(t, "Yes", normalizeYesNo("Yes"))
	assert.Equal(t, "Yes", normalizeYesNo("አዎ"))
	assert.Equal(t, "No", normalizeYesNo("no"))
	assert.Equal(t, "No", normalizeYesNo("አይ"))
}
