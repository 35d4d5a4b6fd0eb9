package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	apptrade "github.com/stockroom/backend/internal/application/trade"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, db, "Ana Souza", "ana@example.com")
	product := mustProduct(t, db, "NB-100", "2500.00", 10, 2)

	order := mustOrder(t, db, "#12345", customer, []trade.LineItem{
		{ProductID: product.ID, Quantity: 2, Price: decimal.RequireFromString("2500.00")},
	})

	t.Run("finds by id with items", func(t *testing.T) {
		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "#12345", found.OrderNumber)
		require.Len(t, found.Items, 1)
		assert.Equal(t, product.ID, found.Items[0].ProductID)
		assert.True(t, found.Total.Equal(decimal.RequireFromString("5000.00")))
	})

	t.Run("finds by order number", func(t *testing.T) {
		found, err := repo.FindByOrderNumber(ctx, "#12345")
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("exists by order number", func(t *testing.T) {
		exists, err := repo.ExistsByOrderNumber(ctx, "#12345")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByOrderNumber(ctx, "#99999")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormOrderRepository_StatusUpdatePersists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, db, "Bruno Lima", "bruno@example.com")
	product := mustProduct(t, db, "MS-100", "80.00", 10, 2)
	order := mustOrder(t, db, "#20001", customer, []trade.LineItem{
		{ProductID: product.ID, Quantity: 1, Price: decimal.RequireFromString("80.00")},
	})

	require.NoError(t, order.UpdateStatus(trade.OrderStatusProcessing))
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusProcessing, found.Status)
}

func TestGormOrderRepository_FilterByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, db, "Carla Dias", "carla@example.com")
	product := mustProduct(t, db, "KB-100", "150.00", 20, 2)

	line := []trade.LineItem{{ProductID: product.ID, Quantity: 1, Price: decimal.RequireFromString("150.00")}}
	mustOrder(t, db, "#30001", customer, line)
	shipped := mustOrder(t, db, "#30002", customer, line)

	require.NoError(t, shipped.UpdateStatus(trade.OrderStatusProcessing))
	require.NoError(t, shipped.UpdateStatus(trade.OrderStatusShipped))
	require.NoError(t, repo.Save(ctx, shipped))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{"status": string(trade.OrderStatusShipped)}

	orders, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "#30002", orders[0].OrderNumber)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormOrderRepository_CountByProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, db, "Diego Farias", "diego@example.com")
	referenced := mustProduct(t, db, "HD-100", "300.00", 10, 2)
	unreferenced := mustProduct(t, db, "HD-101", "300.00", 10, 2)

	mustOrder(t, db, "#40001", customer, []trade.LineItem{
		{ProductID: referenced.ID, Quantity: 1, Price: decimal.RequireFromString("300.00")},
	})
	mustOrder(t, db, "#40002", customer, []trade.LineItem{
		{ProductID: referenced.ID, Quantity: 2, Price: decimal.RequireFromString("300.00")},
	})

	count, err := repo.CountByProduct(ctx, referenced.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByProduct(ctx, unreferenced.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	customer := mustCustomer(t, db, "Elisa Prado", "elisa@example.com")
	p1 := mustProduct(t, db, "TX-001", "100.00", 10, 2)
	p2 := mustProduct(t, db, "TX-002", "100.00", 1, 2)

	err := scope.Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		order, err := trade.NewOrder("#50001", customer.ID, trade.OrderStatusPending, []trade.LineItem{
			{ProductID: p1.ID, Quantity: 5, Price: decimal.RequireFromString("100.00")},
			{ProductID: p2.ID, Quantity: 5, Price: decimal.RequireFromString("100.00")},
		})
		if err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		if err := repos.Products().DecrementStock(ctx, p1.ID, 5); err != nil {
			return err
		}
		// p2 has only 1 unit, this fails and must undo everything above
		return repos.Products().DecrementStock(ctx, p2.ID, 5)
	})
	require.ErrorIs(t, err, shared.ErrInsufficientStock)

	repo := NewGormProductRepository(db)
	found, findErr := repo.FindByID(ctx, p1.ID)
	require.NoError(t, findErr)
	assert.Equal(t, 10, found.Quantity, "first decrement must be rolled back")

	orderRepo := NewGormOrderRepository(db)
	exists, existsErr := orderRepo.ExistsByOrderNumber(ctx, "#50001")
	require.NoError(t, existsErr)
	assert.False(t, exists, "order insert must be rolled back")
}

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	customer := mustCustomer(t, db, "Fabio Reis", "fabio@example.com")
	product := mustProduct(t, db, "TX-003", "100.00", 10, 2)

	err := scope.Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		order, err := trade.NewOrder("#50002", customer.ID, trade.OrderStatusPending, []trade.LineItem{
			{ProductID: product.ID, Quantity: 3, Price: decimal.RequireFromString("100.00")},
		})
		if err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		return repos.Products().DecrementStock(ctx, product.ID, 3)
	})
	require.NoError(t, err)

	repo := NewGormProductRepository(db)
	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Quantity)
}
