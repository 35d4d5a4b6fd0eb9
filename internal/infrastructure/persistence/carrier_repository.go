package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GormCarrierRepository
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// FindByID finds a carrier by its ID
func (r *GormCarrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Carrier, error) {
	var carrier shipping.Carrier
	if err := r.db.WithContext(ctx).First(&carrier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &carrier, nil
}

// FindAll finds all carriers matching the filter
func (r *GormCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Carrier, error) {
	var carriers []shipping.Carrier
	query := r.db.WithContext(ctx).Model(&shipping.Carrier{})

	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("name ASC").Find(&carriers).Error; err != nil {
		return nil, err
	}
	return carriers, nil
}

// FindActive finds all active carriers
func (r *GormCarrierRepository) FindActive(ctx context.Context) ([]shipping.Carrier, error) {
	var carriers []shipping.Carrier
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&carriers).Error; err != nil {
		return nil, err
	}
	return carriers, nil
}

// Save creates or updates a carrier
func (r *GormCarrierRepository) Save(ctx context.Context, carrier *shipping.Carrier) error {
	return r.db.WithContext(ctx).Save(carrier).Error
}

// Count counts carriers matching the filter
func (r *GormCarrierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&shipping.Carrier{})
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCarrierRepository implements CarrierRepository
var _ shipping.CarrierRepository = (*GormCarrierRepository)(nil)
