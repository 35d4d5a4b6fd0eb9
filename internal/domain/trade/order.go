package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo reports whether the status may move to the target.
// The lifecycle is forward-only; cancellation is allowed from any
// non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == OrderStatusCanceled {
		return true
	}
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing
	case OrderStatusProcessing:
		return target == OrderStatusShipped
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	}
	return false
}

// OrderItem is a line item within an order. The price is a snapshot taken
// at order time and may diverge from the product's current price.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal returns price multiplied by quantity
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root of a checkout. Its total is fixed at creation
// time as the sum of its items' subtotals and never recomputed.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// LineItem describes one requested line of a new order
type LineItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// NewOrder creates an order with its items. The total is computed once from
// the supplied line items; prices come from the caller, not the catalog.
func NewOrder(orderNumber string, customerID uuid.UUID, status OrderStatus, lines []LineItem) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order requires a customer")
	}
	if status == "" {
		status = OrderStatusPending
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", status))
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order requires at least one item")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		Status:            status,
		Total:             decimal.Zero,
	}

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be at least 1")
		}
		if line.Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
		}
		item := OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			CreatedAt: order.CreatedAt,
		}
		order.Items = append(order.Items, item)
		order.Total = order.Total.Add(item.Subtotal())
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// UpdateStatus moves the order to a new status, enforcing the transition
// table. Setting the current status again is a no-op.
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if target == o.Status {
		return nil
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	previous := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous))

	return nil
}
