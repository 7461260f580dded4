package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/models"
	"github.com/BruksfildServices01/pos-booking/internal/testutil"
)

func TestStaffRepository_Schedule(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewStaffGormRepository(gdb)
	ctx := context.Background()

	staff := testutil.SeedStaff(t, gdb, business, testutil.Week("09:00", "17:00", testutil.Weekdays...))

	got, err := repo.GetStaff(ctx, business, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = repo.GetStaff(ctx, business+1, staff.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	schedule, err := repo.GetSchedule(ctx, staff.ID)
	require.NoError(t, err)
	window, ok := schedule.For(time.Monday)
	require.True(t, ok)
	assert.Equal(t, 540, window.Start)
	assert.Equal(t, 1020, window.End)

	_, ok = schedule.For(time.Sunday)
	assert.False(t, ok)
}

func TestStaffRepository_ReplaceWorkingHours(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewStaffGormRepository(gdb)
	ctx := context.Background()

	staff := testutil.SeedStaff(t, gdb, business, testutil.Week("09:00", "17:00", testutil.Weekdays...))

	hours := testutil.Week("10:00", "14:00", time.Saturday)
	hours = append(hours, models.WorkingHours{Weekday: int(time.Monday), StartTime: "bad", EndTime: "17:00", Active: true})
	require.NoError(t, repo.ReplaceWorkingHours(ctx, staff.ID, hours))

	stored, err := repo.ListWorkingHours(ctx, staff.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	schedule, err := repo.GetSchedule(ctx, staff.ID)
	require.NoError(t, err)

	_, ok := schedule.For(time.Monday)
	assert.False(t, ok, "malformed rows count as a day off")

	sat, ok := schedule.For(time.Saturday)
	require.True(t, ok)
	assert.Equal(t, 240, sat.Length())
}

func TestCatalogRepository(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewCatalogGormRepository(gdb)
	ctx := context.Background()

	cut := testutil.SeedService(t, gdb, business, "Corte", 30, "35.00")
	testutil.SeedService(t, gdb, business, "Barba", 15, "20.00")

	got, err := repo.GetService(ctx, business, cut.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.DurationMin)

	_, err = repo.GetService(ctx, business+1, cut.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	list, err := repo.ListServices(ctx, business, "", "bar")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Barba", list[0].Name)
}
