package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/trade"
)

// OrderService handles order queries and status changes
type OrderService struct {
	orderRepo      trade.OrderRepository
	customerRepo   partner.CustomerRepository
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID returns the assembled view of one order
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return assembleOrder(ctx, s.orderRepo, s.customerRepo, s.productRepo, orderID)
}

// List returns order summary rows matching the filter
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) (shared.Paginated[OrderListResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[OrderListResponse]{}, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[OrderListResponse]{}, err
	}

	customerNames, err := s.customerNames(ctx, orders)
	if err != nil {
		return shared.Paginated[OrderListResponse]{}, err
	}

	rows := make([]OrderListResponse, 0, len(orders))
	for i := range orders {
		rows = append(rows, ToOrderListResponse(&orders[i], customerNames[orders[i].CustomerID]))
	}

	return shared.NewPaginated(rows, total, filter.Page, filter.PageSize), nil
}

// UpdateStatus moves an order to a new status, enforcing the transition table
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateStatus(trade.OrderStatus(status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err == nil {
			order.ClearDomainEvents()
		}
	}

	return assembleOrder(ctx, s.orderRepo, s.customerRepo, s.productRepo, orderID)
}

// customerNames resolves the customer display name per unique customer id
func (s *OrderService) customerNames(ctx context.Context, orders []trade.Order) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	for i := range orders {
		id := orders[i].CustomerID
		if _, ok := names[id]; ok {
			continue
		}
		customer, err := s.customerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				names[id] = ""
				continue
			}
			return nil, err
		}
		names[id] = customer.Name
	}
	return names, nil
}

// assembleOrder builds the full order view: customer plus items enriched
// with product names
func assembleOrder(
	ctx context.Context,
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	orderID uuid.UUID,
) (*OrderResponse, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	customer, err := customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	productNames := make(map[string]string, len(ids))
	if len(ids) > 0 {
		products, err := productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range products {
			productNames[products[i].ID.String()] = products[i].Name
		}
	}

	response := ToOrderResponse(order, customer, productNames)
	return &response, nil
}
