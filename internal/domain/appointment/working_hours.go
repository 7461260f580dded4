package appointment

import (
	"fmt"
	"strconv"
	"time"
)

const MinutesPerDay = 24 * 60

// TimeRange is a working window inside one day, in minutes since midnight.
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r TimeRange) Valid() bool {
	return r.Start >= 0 && r.Start < r.End && r.End <= MinutesPerDay
}

func (r TimeRange) Length() int {
	return r.End - r.Start
}

// Contains reports whether the slot lies fully inside the window.
func (r TimeRange) Contains(s TimeSlot) bool {
	return s.Start >= r.Start && s.End <= r.End
}

// WeeklySchedule maps a weekday to its working window.
// A weekday missing from the map is a day off.
type WeeklySchedule map[time.Weekday]TimeRange

func (w WeeklySchedule) For(day time.Weekday) (TimeRange, bool) {
	r, ok := w[day]
	if !ok || !r.Valid() {
		return TimeRange{}, false
	}
	return r, true
}

// ParseClock converts "HH:MM" into minutes since midnight.
// "24:00" is accepted as the end of the day.
func ParseClock(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' || !isDigits(hm[:2]) || !isDigits(hm[3:]) {
		return 0, fmt.Errorf("invalid clock %q", hm)
	}
	h, _ := strconv.Atoi(hm[:2])
	m, _ := strconv.Atoi(hm[3:])
	if h == 24 && m == 0 {
		return MinutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q", hm)
	}
	return h*60 + m, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	if minutes == MinutesPerDay {
		return "24:00"
	}
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseRange builds a TimeRange from two "HH:MM" values.
func ParseRange(start, end string) (TimeRange, error) {
	s, err := ParseClock(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return TimeRange{}, err
	}
	r := TimeRange{Start: s, End: e}
	if !r.Valid() {
		return TimeRange{}, fmt.Errorf("invalid range %s-%s", start, end)
	}
	return r, nil
}
