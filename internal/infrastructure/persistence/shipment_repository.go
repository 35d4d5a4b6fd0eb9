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

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByID finds a shipment by its ID
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Shipment, error) {
	var shipment shipping.Shipment
	if err := r.db.WithContext(ctx).First(&shipment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

// FindByOrderID finds all shipments for an order
func (r *GormShipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]shipping.Shipment, error) {
	var shipments []shipping.Shipment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// FindAll finds all shipments matching the filter
func (r *GormShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Shipment, error) {
	var shipments []shipping.Shipment
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shipping.Shipment{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("created_at DESC").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// Save creates or updates a shipment
func (r *GormShipmentRepository) Save(ctx context.Context, shipment *shipping.Shipment) error {
	return r.db.WithContext(ctx).Save(shipment).Error
}

// Count counts shipments matching the filter
func (r *GormShipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shipping.Shipment{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies search and field filters without pagination
func (r *GormShipmentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(shipment_number) LIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "carrier_id":
			query = query.Where("carrier_id = ?", value)
		}
	}

	return query
}

// Ensure GormShipmentRepository implements ShipmentRepository
var _ shipping.ShipmentRepository = (*GormShipmentRepository)(nil)
