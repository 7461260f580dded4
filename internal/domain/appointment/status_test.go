package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

func TestCanTransition_Table(t *testing.T) {
	allowed := map[Status][]Status{
		StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
		StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
		StatusInProgress: {StatusPaid, StatusCancelled},
		StatusPaid:       {StatusCompleted, StatusCancelled},
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			err := CanTransition(from, to)
			if want {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition), "%s -> %s", from, to)
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusNoShow.Terminal())
	assert.False(t, StatusScheduled.Terminal())
	assert.False(t, StatusPaid.Terminal())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))
}

func TestTransition_StampsTimestamps(t *testing.T) {
	created := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed), CreatedAt: created, UpdatedAt: created}

	now := created.Add(2 * time.Hour)
	require.NoError(t, Transition(ap, StatusInProgress, now))

	assert.Equal(t, string(StatusInProgress), ap.Status)
	require.NotNil(t, ap.StartedAt)
	assert.Equal(t, now, *ap.StartedAt)
	assert.Equal(t, now, ap.UpdatedAt)

	later := now.Add(30 * time.Minute)
	require.NoError(t, Transition(ap, StatusPaid, later))
	assert.Equal(t, now, *ap.StartedAt)
	assert.Equal(t, later, ap.UpdatedAt)
}

func TestTransition_RejectsSameStatusAndLeavesRowUntouched(t *testing.T) {
	created := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled), UpdatedAt: created}

	err := Transition(ap, StatusScheduled, created.Add(time.Minute))

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Equal(t, created, ap.UpdatedAt)
}

func TestTransition_CompletedCannotGoBack(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}

	err := Transition(ap, StatusScheduled, time.Now())

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}
