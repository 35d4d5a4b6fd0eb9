package trade

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
	"github.com/stockroom/backend/internal/domain/trade"
)

// CheckoutService places new orders. The stock decrement and the order
// insert run in one transaction, so a failed line item leaves no writes
// behind.
type CheckoutService struct {
	customerRepo   partner.CustomerRepository
	productRepo    catalog.ProductRepository
	orderRepo      trade.OrderRepository
	txScope        TransactionScope
	idempotency    shared.IdempotencyStore
	eventPublisher shared.EventPublisher

	numberAttempts int
	idempotencyTTL time.Duration

	// overridable for tests
	generateNumber func() string
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	orderRepo trade.OrderRepository,
	txScope TransactionScope,
	numberAttempts int,
) *CheckoutService {
	if numberAttempts <= 0 {
		numberAttempts = 8
	}
	return &CheckoutService{
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		txScope:        txScope,
		numberAttempts: numberAttempts,
		idempotencyTTL: 24 * time.Hour,
		generateNumber: func() string {
			return fmt.Sprintf("#%05d", rand.Intn(100000))
		},
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetIdempotencyStore enables checkout memoization per Idempotency-Key
func (s *CheckoutService) SetIdempotencyStore(store shared.IdempotencyStore, ttl time.Duration) {
	s.idempotency = store
	if ttl > 0 {
		s.idempotencyTTL = ttl
	}
}

// Checkout places an order. When idempotencyKey is non-empty and was seen
// before, the original order is returned without re-executing.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest, idempotencyKey string) (*OrderResponse, error) {
	if replayed, ok, err := s.lookupReplay(ctx, idempotencyKey); err != nil {
		return nil, err
	} else if ok {
		return replayed, nil
	}

	lines, err := parseCheckoutItems(req.Items)
	if err != nil {
		return nil, err
	}

	customer, err := s.upsertCustomer(ctx, req.CustomerName, req.CustomerEmail)
	if err != nil {
		return nil, err
	}

	var (
		order        *trade.Order
		productNames map[string]string
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		products, err := s.fetchProducts(ctx, repos.Products(), lines)
		if err != nil {
			return err
		}
		productNames = make(map[string]string, len(products))
		for id, product := range products {
			productNames[id.String()] = product.Name
		}

		orderNumber, err := s.resolveOrderNumber(ctx, repos.Orders(), req.OrderNumber)
		if err != nil {
			return err
		}

		order, err = trade.NewOrder(orderNumber, customer.ID, trade.OrderStatus(req.Status), lines)
		if err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}

		for _, line := range lines {
			if err := repos.Products().DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	s.rememberKey(ctx, idempotencyKey, order.ID.String())

	response := ToOrderResponse(order, customer, productNames)
	return &response, nil
}

// parseCheckoutItems validates every line before any write happens
func parseCheckoutItems(items []CheckoutItemRequest) ([]trade.LineItem, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order requires at least one item")
	}

	lines := make([]trade.LineItem, 0, len(items))
	for i, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Item %d has an invalid product id", i+1))
		}
		if item.Quantity < 1 {
			return nil, shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Item %d quantity must be at least 1", i+1))
		}
		if !item.Price.IsPositive() {
			return nil, shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Item %d price must be greater than zero", i+1))
		}
		lines = append(lines, trade.LineItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return lines, nil
}

// upsertCustomer reuses an existing customer by email. The stored name is
// never overwritten, first write wins.
func (s *CheckoutService) upsertCustomer(ctx context.Context, name, email string) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(name, email)
	if err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.FindByEmail(ctx, customer.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		// a concurrent checkout may have created the same email
		if existing, findErr := s.customerRepo.FindByEmail(ctx, customer.Email); findErr == nil {
			return existing, nil
		}
		return nil, err
	}

	s.publishCustomerEvents(ctx, customer)
	return customer, nil
}

// fetchProducts loads all referenced products in one batch and checks
// availability before any stock is touched
func (s *CheckoutService) fetchProducts(ctx context.Context, repo catalog.ProductRepository, lines []trade.LineItem) (map[uuid.UUID]*catalog.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	products, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	requested := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		requested[line.ProductID] += line.Quantity
	}

	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("Product %s not found", line.ProductID))
		}
		if !product.HasStock(requested[line.ProductID]) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Insufficient stock for product %s", product.Name))
		}
	}

	return byID, nil
}

// resolveOrderNumber uses the caller's number when supplied, otherwise
// draws random candidates until one is free or attempts run out
func (s *CheckoutService) resolveOrderNumber(ctx context.Context, repo trade.OrderRepository, requested string) (string, error) {
	if requested != "" {
		exists, err := repo.ExistsByOrderNumber(ctx, requested)
		if err != nil {
			return "", err
		}
		if exists {
			return "", shared.NewDomainError("CONFLICT",
				fmt.Sprintf("Order number %s is already taken", requested))
		}
		return requested, nil
	}

	for attempt := 0; attempt < s.numberAttempts; attempt++ {
		candidate := s.generateNumber()
		exists, err := repo.ExistsByOrderNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", shared.NewDomainError("CONFLICT", "Could not allocate a unique order number")
}

// lookupReplay returns the memoized order for a previously seen key
func (s *CheckoutService) lookupReplay(ctx context.Context, key string) (*OrderResponse, bool, error) {
	if s.idempotency == nil || key == "" {
		return nil, false, nil
	}

	value, found, err := s.idempotency.Lookup(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	orderID, err := uuid.Parse(value)
	if err != nil {
		return nil, false, nil
	}

	response, err := assembleOrder(ctx, s.orderRepo, s.customerRepo, s.productRepo, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return response, true, nil
}

func (s *CheckoutService) rememberKey(ctx context.Context, key, orderID string) {
	if s.idempotency == nil || key == "" {
		return
	}
	// best effort: a failed write only loses replay protection
	_, _ = s.idempotency.MarkProcessed(ctx, key, orderID, s.idempotencyTTL)
}

func (s *CheckoutService) publishEvents(ctx context.Context, order *trade.Order) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err == nil {
		order.ClearDomainEvents()
	}
}

func (s *CheckoutService) publishCustomerEvents(ctx context.Context, customer *partner.Customer) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, customer.GetDomainEvents()...); err == nil {
		customer.ClearDomainEvents()
	}
}
