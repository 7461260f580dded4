package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pos-booking/internal/models"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"disjoint", TimeSlot{540, 585}, TimeSlot{600, 645}, false},
		{"back to back", TimeSlot{555, 600}, TimeSlot{600, 645}, false},
		{"back to back reversed", TimeSlot{645, 690}, TimeSlot{600, 645}, false},
		{"partial", TimeSlot{585, 630}, TimeSlot{600, 645}, true},
		{"contained", TimeSlot{610, 620}, TimeSlot{600, 645}, true},
		{"identical", TimeSlot{600, 645}, TimeSlot{600, 645}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a))
		})
	}
}

func TestGenerateSlots_StepsByGranularity(t *testing.T) {
	slots := GenerateSlots(TimeRange{Start: 540, End: 630}, 45, 15)

	require.Len(t, slots, 4)
	assert.Equal(t, TimeSlot{540, 585}, slots[0])
	assert.Equal(t, TimeSlot{585, 630}, slots[3])
	for _, s := range slots {
		assert.Equal(t, 45, s.Length())
	}
}

func TestGenerateSlots_EmptyCases(t *testing.T) {
	assert.Empty(t, GenerateSlots(TimeRange{Start: 540, End: 570}, 45, 15), "window shorter than duration")
	assert.Empty(t, GenerateSlots(TimeRange{Start: 540, End: 1020}, 0, 15), "zero duration")
	assert.Empty(t, GenerateSlots(TimeRange{Start: 540, End: 1020}, 30, 0), "zero granularity")
	assert.Empty(t, GenerateSlots(TimeRange{Start: 600, End: 600}, 30, 15), "invalid window")
}

func TestGenerateSlots_EndOfDay(t *testing.T) {
	slots := GenerateSlots(TimeRange{Start: 1380, End: MinutesPerDay}, 60, 15)

	require.Len(t, slots, 1)
	assert.Equal(t, TimeSlot{1380, 1440}, slots[0])
}

func TestFilterFree_WorkdayScenario(t *testing.T) {
	candidates := GenerateSlots(TimeRange{Start: 540, End: 1020}, 45, 15)
	busy := []TimeSlot{{Start: 600, End: 645}}

	free := FilterFree(candidates, busy)

	assert.Contains(t, free, TimeSlot{540, 585})
	assert.Contains(t, free, TimeSlot{555, 600})
	assert.NotContains(t, free, TimeSlot{585, 630})
	assert.NotContains(t, free, TimeSlot{600, 645})
	assert.Contains(t, free, TimeSlot{645, 690})

	for i, s := range free {
		assert.False(t, OverlapsAny(s, busy))
		if i > 0 {
			assert.Less(t, free[i-1].Start, s.Start)
		}
	}
}

func TestBusySlots_SkipsCancelled(t *testing.T) {
	aps := []models.Appointment{
		{StartMinute: 600, EndMinute: 645, Status: string(StatusScheduled)},
		{StartMinute: 700, EndMinute: 730, Status: string(StatusCancelled)},
		{StartMinute: 800, EndMinute: 830, Status: string(StatusNoShow)},
	}

	busy := BusySlots(aps)

	assert.Equal(t, []TimeSlot{{600, 645}, {800, 830}}, busy)
}
