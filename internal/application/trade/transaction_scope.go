package trade

import (
	"context"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/trade"
)

// TransactionalRepositories bundles the repositories that participate in
// a checkout transaction. All of them operate on the same database
// transaction, so either every write commits or none do.
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	Orders() trade.OrderRepository
}

// TransactionScope executes a function within a database transaction
type TransactionScope interface {
	// Execute runs fn inside a transaction. A non-nil error rolls the
	// transaction back, otherwise it commits.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
