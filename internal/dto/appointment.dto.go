package dto

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type SlotDTO struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewSlotDTO(s domain.TimeSlot) SlotDTO {
	return SlotDTO{
		Start:     s.Start,
		End:       s.End,
		StartTime: domain.FormatClock(s.Start),
		EndTime:   domain.FormatClock(s.End),
	}
}

func NewSlotDTOs(slots []domain.TimeSlot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotDTO(s))
	}
	return out
}

type AvailabilityDTO struct {
	Date        string    `json:"date"`
	StaffID     uint      `json:"staff_id"`
	DurationMin int       `json:"duration_minutes"`
	Slots       []SlotDTO `json:"slots"`
}

type AppointmentServiceDTO struct {
	ServiceID   uint            `json:"service_id"`
	DurationMin int             `json:"duration_minutes"`
	Price       decimal.Decimal `json:"price"`
}

type AppointmentDTO struct {
	ID            uint                    `json:"id"`
	StaffID       uint                    `json:"staff_id"`
	Date          string                  `json:"date"`
	StartTime     string                  `json:"start_time"`
	EndTime       string                  `json:"end_time"`
	StartMinute   int                     `json:"start_minute"`
	EndMinute     int                     `json:"end_minute"`
	Status        string                  `json:"status"`
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	TotalPrice    decimal.Decimal         `json:"total_price"`
	Services      []AppointmentServiceDTO `json:"services"`
	Version       int                     `json:"version"`
	StartedAt     *time.Time              `json:"started_at,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	services := make([]AppointmentServiceDTO, 0, len(ap.Services))
	for _, s := range ap.Services {
		services = append(services, AppointmentServiceDTO{
			ServiceID:   s.ServiceID,
			DurationMin: s.DurationMin,
			Price:       s.Price,
		})
	}

	return AppointmentDTO{
		ID:            ap.ID,
		StaffID:       ap.StaffID,
		Date:          ap.Date,
		StartTime:     domain.FormatClock(ap.StartMinute),
		EndTime:       domain.FormatClock(ap.EndMinute),
		StartMinute:   ap.StartMinute,
		EndMinute:     ap.EndMinute,
		Status:        ap.Status,
		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,
		Notes:         ap.Notes,
		TotalPrice:    ap.TotalPrice,
		Services:      services,
		Version:       ap.Version,
		StartedAt:     ap.StartedAt,
		CreatedAt:     ap.CreatedAt,
		UpdatedAt:     ap.UpdatedAt,
	}
}

type SummaryDTO struct {
	CountsByStatus map[string]int64 `json:"counts_by_status"`
	RevenueToday   decimal.Decimal  `json:"revenue_today"`
}

type AppointmentPageDTO struct {
	Data     []AppointmentDTO `json:"data"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int64            `json:"total"`
	Summary  SummaryDTO       `json:"summary"`
}

func NewAppointmentPageDTO(p *domain.Page) AppointmentPageDTO {
	data := make([]AppointmentDTO, 0, len(p.Data))
	for i := range p.Data {
		data = append(data, NewAppointmentDTO(&p.Data[i]))
	}

	counts := make(map[string]int64, len(p.Summary.CountsByStatus))
	for s, n := range p.Summary.CountsByStatus {
		counts[string(s)] = n
	}

	return AppointmentPageDTO{
		Data:     data,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		Summary: SummaryDTO{
			CountsByStatus: counts,
			RevenueToday:   p.Summary.RevenueToday,
		},
	}
}
