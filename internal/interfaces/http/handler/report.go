package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/stockroom/backend/internal/application/report"
)

// ReportHandler serves the sales report and dashboard statistics
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes on the API group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.SalesReport)
	}
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.DashboardStats)
	}
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/stats", h.InventoryStats)
	}
}

// SalesReport returns the aggregated sales report for a date range
func (h *ReportHandler) SalesReport(c *gin.Context) {
	var query reportapp.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.reportService.SalesReport(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DashboardStats returns the dashboard header numbers
func (h *ReportHandler) DashboardStats(c *gin.Context) {
	stats, err := h.reportService.DashboardStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// InventoryStats returns the current stock position summary
func (h *ReportHandler) InventoryStats(c *gin.Context) {
	stats, err := h.reportService.InventoryStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
