package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"17:00": 1020,
		"23:59": 1439,
		"24:00": 1440,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "9:00", "24:01", "12:60", "ab:cd", "-1:00", "+1:00", "12-00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:45", FormatClock(585))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "24:00", FormatClock(1440))
	assert.Equal(t, "00:30", FormatClock(1470))
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, TimeRange{Start: 540, End: 1020}, r)

	_, err = ParseRange("17:00", "09:00")
	assert.Error(t, err)
}

func TestWeeklySchedule_For(t *testing.T) {
	w := WeeklySchedule{
		time.Monday:  {Start: 540, End: 1020},
		time.Tuesday: {Start: 600, End: 600},
	}

	r, ok := w.For(time.Monday)
	assert.True(t, ok)
	assert.Equal(t, 480, r.Length())

	_, ok = w.For(time.Tuesday)
	assert.False(t, ok, "invalid window counts as off")

	_, ok = w.For(time.Sunday)
	assert.False(t, ok)
}
