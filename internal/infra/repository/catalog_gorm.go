package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeNotFound, "service %d", serviceID)
		}
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	businessID uint,
	category string,
	query string,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Where("business_id = ? AND active = ?", businessID, true)

	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if query = strings.ToLower(strings.TrimSpace(query)); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

// Compile-time check
var _ domain.ServiceCatalog = (*CatalogGormRepository)(nil)
