package handler

import (
	"github.com/gin-gonic/gin"

	exchangeapp "github.com/stockroom/backend/internal/application/exchange"
)

// ExchangeHandler serves exchange-rate queries and conversions
type ExchangeHandler struct {
	BaseHandler
	exchangeService *exchangeapp.Service
}

// NewExchangeHandler creates a new ExchangeHandler
func NewExchangeHandler(exchangeService *exchangeapp.Service) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: exchangeService}
}

// RegisterRoutes registers exchange routes on the API group
func (h *ExchangeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.Rates)
		rates.GET("/currencies", h.Currencies)
		rates.POST("/convert", h.Convert)
	}
}

// Rates returns the rate table for a base currency
func (h *ExchangeHandler) Rates(c *gin.Context) {
	var query exchangeapp.RatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rates, err := h.exchangeService.Rates(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rates)
}

// Currencies lists the supported currency codes
func (h *ExchangeHandler) Currencies(c *gin.Context) {
	h.Success(c, h.exchangeService.SupportedCurrencies())
}

// Convert converts an amount between two currencies
func (h *ExchangeHandler) Convert(c *gin.Context) {
	var req exchangeapp.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.exchangeService.Convert(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
