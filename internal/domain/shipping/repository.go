package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
)

// CarrierRepository defines the interface for carrier persistence
type CarrierRepository interface {
	// FindByID finds a carrier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Carrier, error)

	// FindAll finds all carriers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Carrier, error)

	// FindActive finds all active carriers
	FindActive(ctx context.Context) ([]Carrier, error)

	// Save creates or updates a carrier
	Save(ctx context.Context, carrier *Carrier) error

	// Count counts carriers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ShipmentRepository defines the interface for shipment persistence
type ShipmentRepository interface {
	// FindByID finds a shipment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)

	// FindByOrderID finds all shipments for an order
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]Shipment, error)

	// FindAll finds all shipments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Shipment, error)

	// Save creates or updates a shipment
	Save(ctx context.Context, shipment *Shipment) error

	// Count counts shipments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
