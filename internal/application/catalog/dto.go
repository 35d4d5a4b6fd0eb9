package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/catalog"
)

// CreateProductRequest is the request to create a product
type CreateProductRequest struct {
	Code         string          `json:"code" binding:"required,max=50"`
	Name         string          `json:"name" binding:"required,max=200"`
	Category     string          `json:"category" binding:"required,product_category"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Quantity     int             `json:"quantity" binding:"omitempty,min=0"`
	MinimumStock int             `json:"minimum_stock" binding:"omitempty,min=0"`
}

// UpdateProductRequest is the request to update a product's basic fields
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required,max=200"`
	Category string          `json:"category" binding:"required,product_category"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// AdjustStockRequest is the request to edit a product's stock levels
type AdjustStockRequest struct {
	Quantity     int `json:"quantity" binding:"min=0"`
	MinimumStock int `json:"minimum_stock" binding:"min=0"`
}

// ProductListFilter carries list query options
type ProductListFilter struct {
	Category string `form:"category" binding:"omitempty,product_category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ProductResponse is the API view of a product. StockStatus is derived
// on read and never stored.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	MinimumStock int             `json:"minimum_stock"`
	StockStatus  string          `json:"stock_status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its API view
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID.String(),
		Code:         product.Code,
		Name:         product.Name,
		Category:     string(product.Category),
		Price:        product.Price,
		Quantity:     product.Quantity,
		MinimumStock: product.MinimumStock,
		StockStatus:  string(product.StockStatus()),
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}
