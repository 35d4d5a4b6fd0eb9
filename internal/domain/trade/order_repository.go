package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds all orders matching the filter, items included
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// ExistsByOrderNumber reports whether an order with the number exists
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// CountByProduct counts order items referencing the given product
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *Order) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
