package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

// StaffGormRepository backs the staff directory: staff members and their
// weekly working hours.
type StaffGormRepository struct {
	db *gorm.DB
}

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{db: db}
}

func (r *StaffGormRepository) GetStaff(
	ctx context.Context,
	businessID uint,
	staffID uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = ?", staffID, businessID, true).
		First(&staff).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "staff %d", staffID)
		}
		return nil, err
	}
	return &staff, nil
}

// GetSchedule builds the weekly schedule. Inactive or malformed rows are
// treated as days off.
func (r *StaffGormRepository) GetSchedule(
	ctx context.Context,
	staffID uint,
) (domain.WeeklySchedule, error) {

	hours, err := r.ListWorkingHours(ctx, staffID)
	if err != nil {
		return nil, err
	}

	schedule := make(domain.WeeklySchedule, len(hours))
	for _, wh := range hours {
		if !wh.Active || wh.Weekday < 0 || wh.Weekday > 6 {
			continue
		}
		window, err := domain.ParseRange(wh.StartTime, wh.EndTime)
		if err != nil {
			continue
		}
		schedule[time.Weekday(wh.Weekday)] = window
	}
	return schedule, nil
}

func (r *StaffGormRepository) ListWorkingHours(
	ctx context.Context,
	staffID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// ReplaceWorkingHours swaps the whole week in one transaction.
func (r *StaffGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	staffID uint,
	hours []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("staff_id = ?", staffID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(hours) == 0 {
			return nil
		}
		for i := range hours {
			hours[i].StaffID = staffID
		}
		return tx.Create(&hours).Error
	})
}

func (r *StaffGormRepository) CreateStaff(
	ctx context.Context,
	staff *models.Staff,
) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// Compile-time check
var _ domain.ScheduleProvider = (*StaffGormRepository)(nil)
