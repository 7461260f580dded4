package appointment

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pos-booking/internal/audit"
	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/metrics"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type UpdateStatusInput struct {
	BusinessID    uint
	UserID        *uint
	AppointmentID uint
	Status        string
}

type UpdateStatus struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     zerolog.Logger
	opts    Options
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log zerolog.Logger,
	opts Options,
) *UpdateStatus {
	return &UpdateStatus{
		repo:    repo,
		audit:   audit,
		metrics: m,
		log:     log,
		opts:    opts.withDefaults(),
	}
}

// Execute applies one lifecycle transition. The transition is validated
// against the stored status inside the repository's serialized update.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if in.AppointmentID == 0 {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "appointment id is required")
	}

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var from domain.Status
	ap, err := uc.repo.UpdateStatus(ctx, in.BusinessID, in.AppointmentID, func(ap *models.Appointment) error {
		from = domain.Status(ap.Status)
		return domain.Transition(ap, target, uc.opts.Now())
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
			uc.log.Info().
				Uint("appointment_id", in.AppointmentID).
				Str("from", string(from)).
				Str("to", string(target)).
				Msg("transition rejected")
		}
		return nil, err
	}

	uc.metrics.Transition(string(from), string(target))
	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.UserID,
		Action:     audit.ActionAppointmentStatusChanged,
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   target,
		},
	})
	uc.log.Info().
		Uint("appointment_id", ap.ID).
		Str("from", string(from)).
		Str("to", string(target)).
		Msg("appointment status changed")

	return ap, nil
}
