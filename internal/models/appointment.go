package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint `gorm:"index" json:"business_id"`

	StaffID uint `gorm:"index:idx_appointments_staff_date,priority:1;not null" json:"staff_id"`

	// Date is the local calendar day, YYYY-MM-DD.
	Date        string `gorm:"size:10;index:idx_appointments_staff_date,priority:2;not null" json:"date"`
	StartMinute int    `gorm:"not null" json:"start_minute"`
	EndMinute   int    `gorm:"not null" json:"end_minute"`

	Status string `gorm:"size:20;index;default:'scheduled'" json:"status"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	Notes         string `gorm:"size:255" json:"notes"`

	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_price"`

	Services []AppointmentService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`

	Version int `gorm:"not null;default:1" json:"version"`

	StartedAt *time.Time `json:"started_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AppointmentService keeps the ordered service list with the duration and
// price snapshot taken when the appointment was booked.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"-"`
	AppointmentID uint `gorm:"index;not null" json:"-"`
	Position      int  `gorm:"not null" json:"position"`

	ServiceID   uint            `gorm:"not null" json:"service_id"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
}

func (a *Appointment) ServiceIDs() []uint {
	ids := make([]uint, 0, len(a.Services))
	for _, s := range a.Services {
		ids = append(ids, s.ServiceID)
	}
	return ids
}
