package interpreter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Native(t *testing.T) {
	native := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	got, ok := ParseDate(native, DayFirst)
	require.True(t, ok)
	assert.Equal(t, native, got)
}

func TestParseDate_Serial(t *testing.T) {
	// Serial 45000 counts days from the 1899-12-30 spreadsheet epoch,
	// which sits 25569 days before the Unix epoch date.
	got, ok := ParseDate(float64(45000), DayFirst)
	require.True(t, ok)

	want := time.Unix((45000-serialEpochOffsetDays)*86400, 0).UTC()
	assert.Equal(t, want, got)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_ISOText(t *testing.T) {
	got, ok := ParseDate("2024-01-15", DayFirst)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_DelimitedText(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"15/01/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15-01-2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15.01.2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"1/2/2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}, // day-first
	}
	for _, c := range cases {
		got, ok := ParseDate(c.text, DayFirst)
		require.True(t, ok, "ParseDate(%q)", c.text)
		assert.Equal(t, c.want, got, "ParseDate(%q)", c.text)
	}
}

func TestParseDate_MonthFirst(t *testing.T) {
	got, ok := ParseDate("1/2/2024", MonthFirst)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, value := range []any{"", "   ", "holiday", "15/01", "a/b/c", true, nil} {
		_, ok := ParseDate(value, DayFirst)
		assert.False(t, ok, "ParseDate(%v) should fail", value)
	}
}
