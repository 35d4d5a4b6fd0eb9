package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindLowStock finds products with quantity below minimum stock or zero
	FindLowStock(ctx context.Context) ([]Product, error)

	// ExistsByCode reports whether a product with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically decrements a product's quantity by the given
	// amount, only if enough stock remains. Returns shared.ErrInsufficientStock
	// when the conditional update matches no row.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
