package appointment

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pos-booking/internal/audit"
	"github.com/BruksfildServices01/pos-booking/internal/infra/lock"
	"github.com/BruksfildServices01/pos-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pos-booking/internal/metrics"
	"github.com/BruksfildServices01/pos-booking/internal/testutil"
)

const business = uint(1)

// 2026-03-02 is a Monday.
var (
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	db      *gorm.DB
	staff   *repository.StaffGormRepository
	catalog *repository.CatalogGormRepository
	repo    *repository.AppointmentGormRepository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	opts    Options

	staffID uint
	cut     uint // 30 min, 35.00
	beard   uint // 15 min, 20.00
}

// newFixture seeds one staff member working 09:00-17:00 Monday to Friday.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := testutil.NewDB(t)
	staff := testutil.SeedStaff(t, gdb, business, testutil.Week("09:00", "17:00", testutil.Weekdays...))

	f := &fixture{
		db:      gdb,
		staff:   repository.NewStaffGormRepository(gdb),
		catalog: repository.NewCatalogGormRepository(gdb),
		repo:    repository.NewAppointmentGormRepository(gdb, lock.NewMemory()),
		audit:   audit.NewDispatcher(audit.New(gdb), zerolog.Nop()),
		metrics: metrics.New(prometheus.NewRegistry()),
		opts: Options{
			GranularityMin: 15,
			Timezone:       "UTC",
			Now:            func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) },
		},
		staffID: staff.ID,
		cut:     testutil.SeedService(t, gdb, business, "Corte", 30, "35.00").ID,
		beard:   testutil.SeedService(t, gdb, business, "Barba", 15, "20.00").ID,
	}
	t.Cleanup(f.audit.Close)
	return f
}

func (f *fixture) availability() *GetAvailability {
	return NewGetAvailability(f.staff, f.catalog, f.repo, f.metrics, zerolog.Nop(), f.opts)
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(f.staff, f.catalog, f.repo, f.audit, f.metrics, zerolog.Nop(), f.opts)
}

func (f *fixture) updateStatus() *UpdateStatus {
	return NewUpdateStatus(f.repo, f.audit, f.metrics, zerolog.Nop(), f.opts)
}

func (f *fixture) booking(date, at string, services ...uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		BusinessID:   business,
		StaffID:      f.staffID,
		Date:         date,
		Time:         at,
		ServiceIDs:   services,
		CustomerName: "Bruno",
	}
}
