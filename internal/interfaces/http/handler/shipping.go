package handler

import (
	"github.com/gin-gonic/gin"

	shippingapp "github.com/stockroom/backend/internal/application/shipping"
)

// CarrierHandler handles carrier-related API endpoints
type CarrierHandler struct {
	BaseHandler
	carrierService *shippingapp.CarrierService
}

// NewCarrierHandler creates a new CarrierHandler
func NewCarrierHandler(carrierService *shippingapp.CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// RegisterRoutes registers carrier routes on the API group
func (h *CarrierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carriers := rg.Group("/carriers")
	{
		carriers.POST("", h.Create)
		carriers.GET("", h.List)
		carriers.GET("/:id", h.GetByID)
		carriers.PUT("/:id", h.Update)
		carriers.DELETE("/:id", h.Deactivate)
	}
}

// Create registers a carrier
func (h *CarrierHandler) Create(c *gin.Context) {
	var req shippingapp.CreateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	carrier, err := h.carrierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, carrier)
}

// List returns carriers with filtering and pagination
func (h *CarrierHandler) List(c *gin.Context) {
	var filter shippingapp.CarrierListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.carrierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns one carrier
func (h *CarrierHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid carrier ID")
		return
	}

	carrier, err := h.carrierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}

// Update changes a carrier's contact information and active flag
func (h *CarrierHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid carrier ID")
		return
	}

	var req shippingapp.UpdateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	carrier, err := h.carrierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}

// Deactivate soft-disables a carrier for new shipments
func (h *CarrierHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid carrier ID")
		return
	}

	carrier, err := h.carrierService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, carrier)
}

// ShipmentHandler handles shipment-related API endpoints
type ShipmentHandler struct {
	BaseHandler
	shipmentService *shippingapp.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shipmentService *shippingapp.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

// RegisterRoutes registers shipment routes on the API group
func (h *ShipmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.Create)
		shipments.GET("", h.List)
		shipments.GET("/metadata", h.Metadata)
		shipments.GET("/:id", h.GetByID)
		shipments.PATCH("/:id/status", h.UpdateStatus)
	}
	rg.GET("/orders/:id/shipments", h.ListByOrder)
}

// Create schedules a shipment for an order
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req shippingapp.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shipment, err := h.shipmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shipment)
}

// List returns shipments with filtering and pagination
func (h *ShipmentHandler) List(c *gin.Context) {
	var filter shippingapp.ShipmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.shipmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListByOrder returns the shipments scheduled for one order
func (h *ShipmentHandler) ListByOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	shipments, err := h.shipmentService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipments)
}

// Metadata returns shipment statuses and active carriers for UI selectors
func (h *ShipmentHandler) Metadata(c *gin.Context) {
	meta, err := h.shipmentService.Metadata(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, meta)
}

// GetByID returns one shipment
func (h *ShipmentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid shipment ID")
		return
	}

	shipment, err := h.shipmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipment)
}

// UpdateStatus moves a shipment to a new status
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid shipment ID")
		return
	}

	var req shippingapp.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shipment, err := h.shipmentService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shipment)
}
