package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/shipping"
	"github.com/stockroom/backend/internal/domain/trade"
)

type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Carrier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindActive(ctx context.Context) ([]shipping.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Save(ctx context.Context, carrier *shipping.Carrier) error {
	args := m.Called(ctx, carrier)
	return args.Error(0)
}

func (m *MockCarrierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]shipping.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Save(ctx context.Context, shipment *shipping.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

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

func testCarrier(name string, active bool) *shipping.Carrier {
	carrier, err := shipping.NewCarrier(name, "ops@"+name+".example", "+1 555 0100")
	if err != nil {
		panic(err)
	}
	carrier.Active = active
	carrier.ClearDomainEvents()
	return carrier
}

func testOrder(status trade.OrderStatus) *trade.Order {
	order, err := trade.NewOrder("#00042", uuid.New(), trade.OrderStatusPending, []trade.LineItem{
		{ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromFloat(149.90)},
	})
	if err != nil {
		panic(err)
	}
	order.Status = status
	order.ClearDomainEvents()
	return order
}

func testShipment(status shipping.ShipmentStatus) *shipping.Shipment {
	shipment, err := shipping.NewShipment("EXP-000123-007", uuid.New(), uuid.New(), "TRK-1", nil)
	if err != nil {
		panic(err)
	}
	shipment.Status = status
	shipment.ClearDomainEvents()
	return shipment
}
