package persistence

import (
	"context"

	apptrade "github.com/stockroom/backend/internal/application/trade"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside a database transaction. Repositories handed to
// fn are bound to the transaction, so a returned error rolls back every
// write made through them.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&transactionalRepositories{
			products: NewGormProductRepository(tx),
			orders:   NewGormOrderRepository(tx),
		})
	})
}

// transactionalRepositories provides repositories bound to one transaction
type transactionalRepositories struct {
	products *GormProductRepository
	orders   *GormOrderRepository
}

func (r *transactionalRepositories) Products() catalog.ProductRepository {
	return r.products
}

func (r *transactionalRepositories) Orders() trade.OrderRepository {
	return r.orders
}

// Ensure GormTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTransactionScope)(nil)
