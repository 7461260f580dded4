package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pos-booking/internal/audit"
	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/metrics"
	"github.com/BruksfildServices01/pos-booking/internal/models"
	"github.com/BruksfildServices01/pos-booking/internal/timezone"
	"github.com/BruksfildServices01/pos-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BusinessID uint
	UserID     *uint

	StaffID uint
	Date    string // YYYY-MM-DD
	Time    string // HH:MM

	ServiceIDs []uint

	CustomerName  string
	CustomerPhone string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	staff   domain.ScheduleProvider
	catalog domain.ServiceCatalog
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     zerolog.Logger
	opts    Options
}

func NewCreateAppointment(
	staff domain.ScheduleProvider,
	catalog domain.ServiceCatalog,
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log zerolog.Logger,
	opts Options,
) *CreateAppointment {
	return &CreateAppointment{
		staff:   staff,
		catalog: catalog,
		repo:    repo,
		audit:   audit,
		metrics: m,
		log:     log,
		opts:    opts.withDefaults(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	customer, err := validateCreate(in)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(uc.opts.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid date %q", in.Date)
	}

	start, err := domain.ParseClock(in.Time)
	if err != nil || start >= domain.MinutesPerDay {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid time %q", in.Time)
	}

	now := uc.opts.Now().In(timezone.Location(uc.opts.Timezone))
	if startsBefore(in.Date, start, now) {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "cannot book in the past")
	}

	// --------------------------------------------------
	// 2. Staff working window
	// --------------------------------------------------
	if _, err := uc.staff.GetStaff(ctx, in.BusinessID, in.StaffID); err != nil {
		return nil, err
	}

	schedule, err := uc.staff.GetSchedule(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	window, working := schedule.For(day.Weekday())
	if !working {
		return nil, httperr.ErrBusinessf(httperr.CodeStaffUnavailable, "staff %d does not work on %s", in.StaffID, day.Weekday())
	}

	// --------------------------------------------------
	// 3. Duration recomputed from the catalog
	// --------------------------------------------------
	lines, err := domain.ResolveServices(ctx, uc.catalog, in.BusinessID, in.ServiceIDs, uc.opts.FallbackServiceMin)
	if err != nil {
		return nil, err
	}

	total := domain.TotalDuration(lines)
	if total <= 0 {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "selected services have no duration")
	}
	if total > window.Length() {
		return nil, httperr.ErrBusinessf(httperr.CodeNoCapacity, "%d min does not fit in a %d min working day", total, window.Length())
	}

	slot := domain.TimeSlot{Start: start, End: start + total}
	if !window.Contains(slot) {
		return nil, httperr.ErrBusinessf(
			httperr.CodeStaffUnavailable,
			"%s-%s is outside working hours %s-%s",
			domain.FormatClock(slot.Start), domain.FormatClock(slot.End),
			domain.FormatClock(window.Start), domain.FormatClock(window.End),
		)
	}

	// --------------------------------------------------
	// 4. Authoritative check + insert
	// --------------------------------------------------
	ap := domain.NewAppointment(
		in.BusinessID,
		in.StaffID,
		timezone.DateKey(day),
		start,
		lines,
		customer,
		uc.opts.Now(),
	)

	if err := uc.repo.CreateIfFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			uc.metrics.BookingConflict()
			uc.audit.Dispatch(audit.Event{
				BusinessID: in.BusinessID,
				UserID:     in.UserID,
				Action:     audit.ActionAppointmentConflict,
				Entity:     "appointment",
				Metadata: map[string]any{
					"staff_id": in.StaffID,
					"date":     ap.Date,
					"start":    domain.FormatClock(slot.Start),
					"end":      domain.FormatClock(slot.End),
				},
			})
			uc.log.Info().
				Uint("staff_id", in.StaffID).
				Str("date", ap.Date).
				Int("start", slot.Start).
				Int("end", slot.End).
				Msg("booking rejected: slot conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.metrics.BookingCreated()
	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.UserID,
		Action:     audit.ActionAppointmentCreated,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})
	uc.log.Info().
		Uint("appointment_id", ap.ID).
		Uint("staff_id", ap.StaffID).
		Str("date", ap.Date).
		Int("start", ap.StartMinute).
		Int("end", ap.EndMinute).
		Msg("appointment created")

	return ap, nil
}

func validateCreate(in CreateAppointmentInput) (domain.Customer, error) {
	if in.StaffID == 0 {
		return domain.Customer{}, httperr.ErrBusinessf(httperr.CodeInvalidInput, "staff_id is required")
	}
	if len(in.ServiceIDs) == 0 {
		return domain.Customer{}, httperr.ErrBusinessf(httperr.CodeInvalidInput, "at least one service is required")
	}

	c := domain.Customer{
		Name:  strings.TrimSpace(in.CustomerName),
		Notes: strings.TrimSpace(in.Notes),
	}
	if c.Name == "" {
		return domain.Customer{}, httperr.ErrBusinessf(httperr.CodeInvalidInput, "customer_name is required")
	}

	if strings.TrimSpace(in.CustomerPhone) != "" {
		phone, ok := validators.NormalizePhone(in.CustomerPhone)
		if !ok {
			return domain.Customer{}, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid customer_phone")
		}
		c.Phone = phone
	}
	return c, nil
}

// startsBefore reports whether date at minute start is earlier than now.
// now must already be in the business zone.
func startsBefore(date string, start int, now time.Time) bool {
	today := timezone.DateKey(now)
	if date != today {
		return date < today
	}
	return start < now.Hour()*60+now.Minute()
}
