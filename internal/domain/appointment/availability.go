package appointment

import (
	"time"

	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type AvailabilityInput struct {
	BusinessID uint
	StaffID    uint
	ServiceIDs []uint
	Date       time.Time
}

// TimeSlot is a half-open interval [Start, End) in minutes since midnight.
type TimeSlot struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s TimeSlot) Length() int {
	return s.End - s.Start
}

// Overlaps is the single conflict rule: back-to-back slots do not overlap.
func Overlaps(a, b TimeSlot) bool {
	return a.Start < b.End && b.Start < a.End
}

func OverlapsAny(s TimeSlot, busy []TimeSlot) bool {
	for _, b := range busy {
		if Overlaps(s, b) {
			return true
		}
	}
	return false
}

// SlotOf returns the interval an appointment occupies.
func SlotOf(ap *models.Appointment) TimeSlot {
	return TimeSlot{Start: ap.StartMinute, End: ap.EndMinute}
}

// BusySlots collects the intervals of the active appointments.
func BusySlots(aps []models.Appointment) []TimeSlot {
	busy := make([]TimeSlot, 0, len(aps))
	for i := range aps {
		if !Status(aps[i].Status).Active() {
			continue
		}
		busy = append(busy, SlotOf(&aps[i]))
	}
	return busy
}

// GenerateSlots walks the window in steps of granularity and emits every
// candidate of the given duration that ends inside the window.
// All arithmetic stays in integer minutes of the same day.
func GenerateSlots(window TimeRange, duration, granularity int) []TimeSlot {
	if duration <= 0 || granularity <= 0 || !window.Valid() {
		return []TimeSlot{}
	}
	if window.Length() < duration {
		return []TimeSlot{}
	}

	slots := make([]TimeSlot, 0, (window.Length()-duration)/granularity+1)
	for t := window.Start; t+duration <= window.End; t += granularity {
		slots = append(slots, TimeSlot{Start: t, End: t + duration})
	}
	return slots
}

// FilterFree keeps the candidates that overlap none of the busy intervals.
// Candidate order is preserved.
func FilterFree(candidates, busy []TimeSlot) []TimeSlot {
	free := make([]TimeSlot, 0, len(candidates))
	for _, c := range candidates {
		if !OverlapsAny(c, busy) {
			free = append(free, c)
		}
	}
	return free
}
