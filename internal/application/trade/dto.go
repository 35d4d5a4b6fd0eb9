package trade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/trade"
)

// CheckoutItemRequest is one requested line of a checkout
type CheckoutItemRequest struct {
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// CheckoutRequest is the request to place a new order
type CheckoutRequest struct {
	CustomerName  string                `json:"customer_name" binding:"required,max=200"`
	CustomerEmail string                `json:"customer_email" binding:"required,email"`
	OrderNumber   string                `json:"order_number" binding:"omitempty,max=20"`
	Status        string                `json:"status" binding:"omitempty,order_status"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the request to move an order to a new status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,order_status"`
}

// OrderListFilter carries list query options
type OrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,order_status"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// CustomerSummary is the embedded customer view of an order response
type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItemResponse is one line of an order response
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the assembled view of a single order
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	Customer    CustomerSummary     `json:"customer"`
	Status      string              `json:"status"`
	Total       decimal.Decimal     `json:"total"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// OrderListResponse is the summary row of the order list
type OrderListResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToOrderResponse assembles an order response. productNames maps product
// IDs to display names; unknown IDs simply leave the name empty.
func ToOrderResponse(order *trade.Order, customer *partner.Customer, productNames map[string]string) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: productNames[item.ProductID.String()],
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		})
	}

	response := OrderResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Total:       order.Total,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	if customer != nil {
		response.Customer = CustomerSummary{
			ID:    customer.ID.String(),
			Name:  customer.Name,
			Email: customer.Email,
		}
	}
	return response
}

// ToOrderListResponse converts an order to its list summary row
func ToOrderListResponse(order *trade.Order, customerName string) OrderListResponse {
	return OrderListResponse{
		ID:           order.ID.String(),
		OrderNumber:  order.OrderNumber,
		CustomerName: customerName,
		Status:       string(order.Status),
		Total:        order.Total,
		ItemCount:    len(order.Items),
		CreatedAt:    order.CreatedAt,
	}
}
