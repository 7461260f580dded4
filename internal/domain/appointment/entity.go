package appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/pos-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to the target status and stamps lifecycle timestamps.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	ap.UpdatedAt = now
	if to == StatusInProgress {
		ap.StartedAt = &now
	}
	return nil
}

// ServiceLine is a resolved catalog entry used to build an appointment.
type ServiceLine struct {
	ServiceID   uint
	DurationMin int
	Price       decimal.Decimal
}

// NewAppointment builds a scheduled appointment whose end is derived from
// the summed service durations.
func NewAppointment(
	businessID uint,
	staffID uint,
	date string,
	start int,
	lines []ServiceLine,
	customer Customer,
	now time.Time,
) *models.Appointment {
	ap := &models.Appointment{
		BusinessID:    businessID,
		StaffID:       staffID,
		Date:          date,
		StartMinute:   start,
		Status:        string(InitialStatus()),
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		Notes:         customer.Notes,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	total := 0
	price := decimal.Zero
	for i, l := range lines {
		total += l.DurationMin
		price = price.Add(l.Price)
		ap.Services = append(ap.Services, models.AppointmentService{
			Position:    i,
			ServiceID:   l.ServiceID,
			DurationMin: l.DurationMin,
			Price:       l.Price,
		})
	}
	ap.EndMinute = start + total
	ap.TotalPrice = price
	return ap
}

type Customer struct {
	Name  string
	Phone string
	Notes string
}
