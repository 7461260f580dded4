package appointment

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/metrics"
	"github.com/BruksfildServices01/pos-booking/internal/timezone"
)

type AvailabilityResult struct {
	Date        string            `json:"date"`
	StaffID     uint              `json:"staff_id"`
	DurationMin int               `json:"duration_minutes"`
	Slots       []domain.TimeSlot `json:"slots"`
}

type GetAvailability struct {
	staff   domain.ScheduleProvider
	catalog domain.ServiceCatalog
	repo    domain.Repository
	metrics *metrics.Metrics
	log     zerolog.Logger
	opts    Options
}

func NewGetAvailability(
	staff domain.ScheduleProvider,
	catalog domain.ServiceCatalog,
	repo domain.Repository,
	m *metrics.Metrics,
	log zerolog.Logger,
	opts Options,
) *GetAvailability {
	return &GetAvailability{
		staff:   staff,
		catalog: catalog,
		repo:    repo,
		metrics: m,
		log:     log,
		opts:    opts.withDefaults(),
	}
}

// Execute lists the bookable start times of a staff member for one day.
// A day off or a window too short for the services yields an empty list.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*AvailabilityResult, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "at least one service is required")
	}
	if in.StaffID == 0 || in.Date.IsZero() {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "staff and date are required")
	}

	date := timezone.DateKey(in.Date)
	out := &AvailabilityResult{
		Date:    date,
		StaffID: in.StaffID,
		Slots:   []domain.TimeSlot{},
	}

	// --------------------------------------------------
	// Working window
	// --------------------------------------------------
	if _, err := uc.staff.GetStaff(ctx, in.BusinessID, in.StaffID); err != nil {
		return nil, err
	}

	schedule, err := uc.staff.GetSchedule(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	window, working := schedule.For(in.Date.Weekday())
	if !working {
		uc.log.Debug().Uint("staff_id", in.StaffID).Str("date", date).Msg("day off")
		uc.metrics.SlotsReturned(0)
		return out, nil
	}

	// --------------------------------------------------
	// Total duration
	// --------------------------------------------------
	lines, err := domain.ResolveServices(ctx, uc.catalog, in.BusinessID, in.ServiceIDs, uc.opts.FallbackServiceMin)
	if err != nil {
		return nil, err
	}
	out.DurationMin = domain.TotalDuration(lines)

	candidates := domain.GenerateSlots(window, out.DurationMin, uc.opts.GranularityMin)
	if len(candidates) == 0 {
		uc.metrics.SlotsReturned(0)
		return out, nil
	}

	// --------------------------------------------------
	// Existing bookings
	// --------------------------------------------------
	existing, err := uc.repo.ListActiveByStaffAndDate(ctx, in.StaffID, date)
	if err != nil {
		return nil, err
	}

	out.Slots = domain.FilterFree(candidates, domain.BusySlots(existing))
	uc.metrics.SlotsReturned(len(out.Slots))

	uc.log.Debug().
		Uint("staff_id", in.StaffID).
		Str("date", date).
		Int("duration_min", out.DurationMin).
		Int("candidates", len(candidates)).
		Int("free", len(out.Slots)).
		Msg("availability computed")

	return out, nil
}
