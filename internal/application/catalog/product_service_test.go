package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository mocks the slice of trade.OrderRepository the
// product service needs
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newProduct(t *testing.T, code string, quantity, minimumStock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(code, "Product "+code, catalog.CategoryPeripherals,
		decimal.RequireFromString("99.90"), quantity, minimumStock)
	require.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockOrderRepository))

		productRepo.On("ExistsByCode", ctx, "KB-001").Return(false, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		response, err := service.Create(ctx, CreateProductRequest{
			Code:         "KB-001",
			Name:         "Mechanical Keyboard",
			Category:     "peripherals",
			Price:        decimal.RequireFromString("350.00"),
			Quantity:     25,
			MinimumStock: 5,
		})
		require.NoError(t, err)

		assert.Equal(t, "KB-001", response.Code)
		assert.Equal(t, "in_stock", response.StockStatus)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockOrderRepository))

		productRepo.On("ExistsByCode", ctx, "KB-001").Return(true, nil)

		_, err := service.Create(ctx, CreateProductRequest{
			Code:     "KB-001",
			Name:     "Mechanical Keyboard",
			Category: "peripherals",
			Price:    decimal.RequireFromString("350.00"),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockOrderRepository))

		productRepo.On("ExistsByCode", ctx, "KB-002").Return(false, nil)

		_, err := service.Create(ctx, CreateProductRequest{
			Code:     "KB-002",
			Name:     "Mechanical Keyboard",
			Category: "furniture",
			Price:    decimal.RequireFromString("350.00"),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})
}

func TestProductService_StockStatusDerivation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
		minimum  int
		expected string
	}{
		{"zero quantity is critical", 0, 10, "critical"},
		{"below minimum is low", 4, 10, "low"},
		{"at minimum is in stock", 10, 10, "in_stock"},
		{"above minimum is in stock", 50, 10, "in_stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			service := NewProductService(productRepo, new(MockOrderRepository))

			product := newProduct(t, "ST-001", tt.quantity, tt.minimum)
			productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

			response, err := service.GetByID(ctx, product.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, response.StockStatus)
		})
	}
}

func TestProductService_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the edit", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockOrderRepository))

		product := newProduct(t, "ST-002", 10, 5)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		response, err := service.AdjustStock(ctx, product.ID, AdjustStockRequest{Quantity: 3, MinimumStock: 8})
		require.NoError(t, err)

		assert.Equal(t, 3, response.Quantity)
		assert.Equal(t, 8, response.MinimumStock)
		assert.Equal(t, "low", response.StockStatus)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewProductService(productRepo, new(MockOrderRepository))

		product := newProduct(t, "ST-003", 10, 5)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := service.AdjustStock(ctx, product.ID, AdjustStockRequest{Quantity: -1, MinimumStock: 5})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		service := NewProductService(productRepo, orderRepo)

		product := newProduct(t, "DL-001", 10, 5)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("CountByProduct", ctx, product.ID).Return(int64(0), nil)
		productRepo.On("Delete", ctx, product.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, product.ID))
		productRepo.AssertExpectations(t)
	})

	t.Run("refuses to delete a product referenced by orders", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		service := NewProductService(productRepo, orderRepo)

		product := newProduct(t, "DL-002", 10, 5)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("CountByProduct", ctx, product.ID).Return(int64(3), nil)

		err := service.Delete(ctx, product.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProductService_ListLowStock(t *testing.T) {
	ctx := context.Background()

	productRepo := new(MockProductRepository)
	service := NewProductService(productRepo, new(MockOrderRepository))

	low := newProduct(t, "LS-001", 2, 10)
	productRepo.On("FindLowStock", ctx).Return([]catalog.Product{*low}, nil)

	responses, err := service.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "low", responses[0].StockStatus)
}
