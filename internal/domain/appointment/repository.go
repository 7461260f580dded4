package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateIfFree re-checks the interval against the active appointments of
	// the same staff and date and inserts ap in the same atomic unit.
	// It fails with slot_conflict when the interval is taken.
	CreateIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListActiveByStaffAndDate(
		ctx context.Context,
		staffID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		businessID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateStatus loads the appointment, runs apply against the fresh row
	// and persists the result, serialized per appointment.
	UpdateStatus(
		ctx context.Context,
		businessID uint,
		appointmentID uint,
		apply func(ap *models.Appointment) error,
	) (*models.Appointment, error)

	// -------- Listing --------
	ListFiltered(
		ctx context.Context,
		filter Filter,
	) (*Page, error)
}

// ScheduleProvider is the read side of the staff directory.
type ScheduleProvider interface {
	GetStaff(
		ctx context.Context,
		businessID uint,
		staffID uint,
	) (*models.Staff, error)

	GetSchedule(
		ctx context.Context,
		staffID uint,
	) (WeeklySchedule, error)
}

// ServiceCatalog returns not_found for unknown services.
type ServiceCatalog interface {
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)
}

type Filter struct {
	BusinessID uint
	Date       string
	Status     Status
	StaffID    uint
	Search     string

	// Today drives the same-day revenue aggregate.
	Today string

	Page     int
	PageSize int
}

type Summary struct {
	CountsByStatus map[Status]int64 `json:"counts_by_status"`
	RevenueToday   decimal.Decimal  `json:"revenue_today"`
}

type Page struct {
	Data     []models.Appointment `json:"data"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Total    int64                `json:"total"`
	Summary  Summary              `json:"summary"`
}
