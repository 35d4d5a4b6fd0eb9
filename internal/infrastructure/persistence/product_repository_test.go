package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, db, "NB-001", "4500.00", 10, 5)

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "NB-001", found.Code)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("4500.00")))
	})

	t.Run("finds by code", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "NB-001")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("exists by code", func(t *testing.T) {
		exists, err := repo.ExistsByCode(ctx, "NB-001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByCode(ctx, "NB-999")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	p1 := mustProduct(t, db, "KB-001", "150.00", 20, 5)
	p2 := mustProduct(t, db, "MS-001", "80.00", 15, 5)
	mustProduct(t, db, "HD-001", "300.00", 8, 5)

	products, err := repo.FindByIDs(ctx, []uuid.UUID{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGormProductRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements when enough stock", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		product := mustProduct(t, db, "NB-002", "100.00", 10, 2)

		require.NoError(t, repo.DecrementStock(ctx, product.ID, 4))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, found.Quantity)
	})

	t.Run("rejects decrement below zero", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		product := mustProduct(t, db, "NB-003", "100.00", 3, 2)

		err := repo.DecrementStock(ctx, product.ID, 5)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		found, findErr := repo.FindByID(ctx, product.ID)
		require.NoError(t, findErr)
		assert.Equal(t, 3, found.Quantity, "quantity must be untouched after a rejected decrement")
	})

	t.Run("drains stock to exactly zero", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		product := mustProduct(t, db, "NB-004", "100.00", 5, 2)

		require.NoError(t, repo.DecrementStock(ctx, product.ID, 5))
		assert.ErrorIs(t, repo.DecrementStock(ctx, product.ID, 1), shared.ErrInsufficientStock)
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)

		err := repo.DecrementStock(ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("only as many sequential decrements succeed as stock allows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductRepository(db)
		product := mustProduct(t, db, "NB-005", "100.00", 3, 0)

		succeeded := 0
		for i := 0; i < 5; i++ {
			if err := repo.DecrementStock(ctx, product.ID, 1); err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 3, succeeded)

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Quantity)
	})
}

func TestGormProductRepository_FindLowStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	mustProduct(t, db, "OK-001", "10.00", 50, 10)
	low := mustProduct(t, db, "LOW-001", "10.00", 4, 10)
	critical := mustProduct(t, db, "CRIT-001", "10.00", 0, 10)

	products, err := repo.FindLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	codes := []string{products[0].Code, products[1].Code}
	assert.Contains(t, codes, low.Code)
	assert.Contains(t, codes, critical.Code)
}

func TestGormProductRepository_FilterAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	mustProduct(t, db, "NB-010", "100.00", 10, 5)
	mustProduct(t, db, "NB-011", "100.00", 10, 5)
	mustProduct(t, db, "KB-010", "100.00", 10, 5)

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "product nb"

		products, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"category": string(catalog.CategoryElectronics)}

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("pagination bounds the result", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Page = 1
		filter.PageSize = 2

		products, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})
}
