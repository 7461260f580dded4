package appointment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
)

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, f.booking("2026-03-02", "10:00", f.cut))
	require.NoError(t, err)

	uc := f.updateStatus()
	for _, s := range []domain.Status{
		domain.StatusConfirmed, domain.StatusInProgress, domain.StatusPaid, domain.StatusCompleted,
	} {
		got, err := uc.Execute(ctx, UpdateStatusInput{BusinessID: business, AppointmentID: ap.ID, Status: string(s)})
		require.NoError(t, err, "to %s", s)
		assert.Equal(t, string(s), got.Status)
		if s == domain.StatusInProgress {
			assert.NotNil(t, got.StartedAt)
		}
	}

	_, err = uc.Execute(ctx, UpdateStatusInput{BusinessID: business, AppointmentID: ap.ID, Status: "scheduled"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestUpdateStatus_CancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, f.booking("2026-03-02", "10:00", f.cut))
	require.NoError(t, err)

	got, err := f.updateStatus().Execute(ctx, UpdateStatusInput{BusinessID: business, AppointmentID: ap.ID, Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)

	_, err = f.create().Execute(ctx, f.booking("2026-03-02", "10:00", f.cut))
	assert.NoError(t, err)
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.updateStatus()

	_, err := uc.Execute(ctx, UpdateStatusInput{BusinessID: business, AppointmentID: 999, Status: "confirmed"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	_, err = uc.Execute(ctx, UpdateStatusInput{BusinessID: business, AppointmentID: 1, Status: "done"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = uc.Execute(ctx, UpdateStatusInput{BusinessID: business, Status: "confirmed"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))
}

func TestListAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, f.booking("2026-03-02", "10:00", f.cut))
	require.NoError(t, err)
	_, err = f.create().Execute(ctx, f.booking("2026-03-03", "10:00", f.cut))
	require.NoError(t, err)

	uc := f.updateStatus()
	for _, s := range []string{"confirmed", "in_progress", "paid", "completed"} {
		_, err := uc.Execute(ctx, UpdateStatusInput{BusinessID: business, AppointmentID: ap.ID, Status: s})
		require.NoError(t, err)
	}

	list := NewListAppointments(f.repo, f.opts)
	page, err := list.Execute(ctx, ListAppointmentsInput{BusinessID: business, Date: "2026-03-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.True(t, page.Summary.RevenueToday.Equal(decimal.NewFromInt(35)), "got %s", page.Summary.RevenueToday)

	all, err := list.Execute(ctx, ListAppointmentsInput{BusinessID: business, Status: "scheduled"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), all.Total)

	_, err = list.Execute(ctx, ListAppointmentsInput{BusinessID: business, Status: "unknown"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = list.Execute(ctx, ListAppointmentsInput{BusinessID: business, Date: "2026-13-40"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	got, err := NewGetAppointment(f.repo).Execute(ctx, business, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)
}
