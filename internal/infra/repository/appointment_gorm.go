package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/infra/lock"
	"github.com/BruksfildServices01/pos-booking/internal/models"
	"github.com/BruksfildServices01/pos-booking/internal/validators"
)

const (
	defaultPageSize   = 20
	maxPageSize       = 100
	maxStatusAttempts = 3
)

var errStaleVersion = errors.New("appointment changed concurrently")

type AppointmentGormRepository struct {
	db     *gorm.DB
	locker lock.Locker
}

func NewAppointmentGormRepository(db *gorm.DB, locker lock.Locker) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, locker: locker}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	key := lock.BookingKey(ap.StaffID, ap.Date)

	release, err := r.locker.Lock(ctx, key)
	if err != nil {
		return fmt.Errorf("acquire %s: %w", key, err)
	}
	defer release()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Replicas without a shared locker still serialize on postgres.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
				return err
			}
		}

		var existing []models.Appointment
		if err := forUpdate(tx).
			Select("id", "start_minute", "end_minute", "status").
			Where(
				"staff_id = ? AND date = ? AND status <> ?",
				ap.StaffID, ap.Date, string(domain.StatusCancelled),
			).
			Find(&existing).Error; err != nil {
			return err
		}

		slot := domain.SlotOf(ap)
		if domain.OverlapsAny(slot, domain.BusySlots(existing)) {
			return httperr.ErrBusinessf(
				httperr.CodeSlotConflict,
				"%s-%s is no longer available",
				domain.FormatClock(slot.Start), domain.FormatClock(slot.End),
			)
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusinessf(httperr.CodeSlotConflict, "interval rejected by store")
	}
	return err
}

func (r *AppointmentGormRepository) ListActiveByStaffAndDate(
	ctx context.Context,
	staffID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"staff_id = ? AND date = ? AND status <> ?",
			staffID, date, string(domain.StatusCancelled),
		).
		Order("start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	businessID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services", orderedServices).
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "appointment %d", appointmentID)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	businessID uint,
	appointmentID uint,
	apply func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	for attempt := 0; attempt < maxStatusAttempts; attempt++ {
		// apply always sees the latest committed row.
		updated, err := r.GetAppointment(ctx, businessID, appointmentID)
		if err != nil {
			return nil, err
		}

		prev := updated.Version
		if err := apply(updated); err != nil {
			return nil, err
		}
		updated.Version = prev + 1

		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var current models.Appointment
			if err := forUpdate(tx).
				Select("id", "version").
				Where("id = ? AND business_id = ?", appointmentID, businessID).
				First(&current).Error; err != nil {

				if errors.Is(err, gorm.ErrRecordNotFound) {
					return httperr.ErrBusinessf(httperr.CodeNotFound, "appointment %d", appointmentID)
				}
				return err
			}
			if current.Version != prev {
				return errStaleVersion
			}

			res := tx.
				Model(&models.Appointment{}).
				Where("id = ? AND version = ?", appointmentID, prev).
				Updates(map[string]any{
					"status":     updated.Status,
					"started_at": updated.StartedAt,
					"updated_at": updated.UpdatedAt,
					"version":    updated.Version,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errStaleVersion
			}
			return nil
		})

		if errors.Is(err, errStaleVersion) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, fmt.Errorf("update appointment %d: %w", appointmentID, errStaleVersion)
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListFiltered(
	ctx context.Context,
	f domain.Filter,
) (*domain.Page, error) {

	page, size := normalizePage(f.Page, f.PageSize)

	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("business_id = ?", f.BusinessID)

		if f.Date != "" {
			q = q.Where("date = ?", f.Date)
		}
		if f.StaffID != 0 {
			q = q.Where("staff_id = ?", f.StaffID)
		}
		if search := strings.TrimSpace(f.Search); search != "" {
			name := "%" + escapeLike(strings.ToLower(search)) + "%"
			if digits := validators.Digits(search); digits != "" {
				q = q.Where(
					"(LOWER(customer_name) LIKE ? ESCAPE '\\' OR customer_phone LIKE ?)",
					name, "%"+digits+"%",
				)
			} else {
				q = q.Where("LOWER(customer_name) LIKE ? ESCAPE '\\'", name)
			}
		}
		return q
	}

	withStatus := func() *gorm.DB {
		q := filtered()
		if f.Status != "" {
			q = q.Where("status = ?", string(f.Status))
		}
		return q
	}

	var total int64
	if err := withStatus().Count(&total).Error; err != nil {
		return nil, err
	}

	var data []models.Appointment
	if err := withStatus().
		Preload("Services", orderedServices).
		Order("date ASC").
		Order("start_minute ASC").
		Order("id ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&data).Error; err != nil {
		return nil, err
	}

	counts, err := r.countByStatus(filtered())
	if err != nil {
		return nil, err
	}

	revenue, err := r.revenueFor(ctx, f)
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Data:     data,
		Page:     page,
		PageSize: size,
		Total:    total,
		Summary: domain.Summary{
			CountsByStatus: counts,
			RevenueToday:   revenue,
		},
	}, nil
}

func (r *AppointmentGormRepository) countByStatus(q *gorm.DB) (map[domain.Status]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	if err := q.
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.Status]int64, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[domain.Status(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *AppointmentGormRepository) revenueFor(ctx context.Context, f domain.Filter) (decimal.Decimal, error) {
	if f.Today == "" {
		return decimal.Zero, nil
	}

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"business_id = ? AND date = ? AND status = ?",
			f.BusinessID, f.Today, string(domain.StatusCompleted),
		)
	if f.StaffID != 0 {
		q = q.Where("staff_id = ?", f.StaffID)
	}

	var prices []decimal.Decimal
	if err := q.Pluck("total_price", &prices).Error; err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p)
	}
	return sum, nil
}

// forUpdate adds row locks where the dialect has them; sqlite writes are
// already serialized by its single connection.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE ... ESCAPE '\' pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func orderedServices(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
