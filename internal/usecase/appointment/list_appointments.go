package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/models"
	"github.com/BruksfildServices01/pos-booking/internal/timezone"
)

type ListAppointmentsInput struct {
	BusinessID uint
	Date       string
	Status     string
	StaffID    uint
	Search     string
	Page       int
	PageSize   int
}

type ListAppointments struct {
	repo domain.Repository
	opts Options
}

func NewListAppointments(repo domain.Repository, opts Options) *ListAppointments {
	return &ListAppointments{repo: repo, opts: opts.withDefaults()}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) (*domain.Page, error) {

	f := domain.Filter{
		BusinessID: in.BusinessID,
		StaffID:    in.StaffID,
		Search:     strings.TrimSpace(in.Search),
		Today:      timezone.DateKey(uc.opts.Now()),
		Page:       in.Page,
		PageSize:   in.PageSize,
	}

	if d := strings.TrimSpace(in.Date); d != "" {
		day, err := timezone.ParseDate(uc.opts.Timezone, d)
		if err != nil {
			return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid date %q", d)
		}
		f.Date = timezone.DateKey(day)
	}

	if s := strings.TrimSpace(in.Status); s != "" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		f.Status = status
	}

	return uc.repo.ListFiltered(ctx, f)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, businessID, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "appointment id is required")
	}
	return uc.repo.GetAppointment(ctx, businessID, id)
}
