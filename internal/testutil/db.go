// Package testutil wires throwaway sqlite stores for package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pos-booking/internal/config"
	"github.com/BruksfildServices01/pos-booking/internal/db"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

// NewDB opens a migrated in-memory database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(config.DriverSQLite, ":memory:", zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb, zerolog.Nop()))
	return gdb
}

// Week returns working hours for every weekday listed, all with the same window.
func Week(start, end string, days ...time.Weekday) []models.WorkingHours {
	hours := make([]models.WorkingHours, 0, len(days))
	for _, d := range days {
		hours = append(hours, models.WorkingHours{
			Weekday:   int(d),
			StartTime: start,
			EndTime:   end,
			Active:    true,
		})
	}
	return hours
}

// Weekdays is Monday through Friday.
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// SeedStaff creates an active staff member with the given hours.
func SeedStaff(t *testing.T, gdb *gorm.DB, businessID uint, hours []models.WorkingHours) *models.Staff {
	t.Helper()

	staff := &models.Staff{BusinessID: businessID, Name: "Ana", Active: true, WorkingHours: hours}
	require.NoError(t, gdb.Create(staff).Error)
	return staff
}

// SeedService creates a catalog entry.
func SeedService(t *testing.T, gdb *gorm.DB, businessID uint, name string, minutes int, price string) *models.Service {
	t.Helper()

	svc := &models.Service{
		BusinessID:  businessID,
		Name:        name,
		DurationMin: minutes,
		Price:       decimal.RequireFromString(price),
		Active:      true,
	}
	require.NoError(t, gdb.Create(svc).Error)
	return svc
}
