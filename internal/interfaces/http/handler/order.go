package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/stockroom/backend/internal/application/trade"
)

// IdempotencyKeyHeader carries the client-chosen checkout replay key
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	BaseHandler
	checkoutService *tradeapp.CheckoutService
	orderService    *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *tradeapp.CheckoutService, orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// RegisterRoutes registers order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Checkout)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PATCH("/:id", h.UpdateStatus)
	}
}

// Checkout places an order. Repeated requests carrying the same
// Idempotency-Key header return the original order.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req tradeapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	idempotencyKey := c.GetHeader(IdempotencyKeyHeader)

	order, err := h.checkoutService.Checkout(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List returns orders with filtering and pagination
func (h *OrderHandler) List(c *gin.Context) {
	var filter tradeapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns one order with its items
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus moves an order to a new status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
