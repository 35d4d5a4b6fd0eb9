package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/shared"
)

// Category classifies a product within the catalog
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryComputers   Category = "computers"
	CategoryPeripherals Category = "peripherals"
	CategoryAccessories Category = "accessories"
)

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryComputers, CategoryPeripherals, CategoryAccessories:
		return true
	}
	return false
}

// Categories returns all known categories
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryComputers, CategoryPeripherals, CategoryAccessories}
}

// StockStatus is the derived classification of a product's stock level.
// It is computed on read and never stored.
type StockStatus string

const (
	StockStatusCritical StockStatus = "critical"
	StockStatusLow      StockStatus = "low"
	StockStatusInStock  StockStatus = "in_stock"
)

// Product represents a product/SKU in the catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Category     Category        `gorm:"type:varchar(20);not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Quantity     int             `gorm:"not null;default:0"`
	MinimumStock int             `gorm:"not null;default:10"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name string, category Category, price decimal.Decimal, quantity, minimumStock int) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown product category %q", category))
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if minimumStock < 0 {
		return nil, shared.NewDomainError("INVALID_MINIMUM_STOCK", "Minimum stock cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Category:          category,
		Price:             price,
		Quantity:          quantity,
		MinimumStock:      minimumStock,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name string, category Category, price decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown product category %q", category))
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.Category = category
	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// AdjustStock applies an admin stock edit. Last writer wins; there is no
// optimistic-lock check on the quantity itself.
func (p *Product) AdjustStock(quantity, minimumStock int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if minimumStock < 0 {
		return shared.NewDomainError("INVALID_MINIMUM_STOCK", "Minimum stock cannot be negative")
	}

	p.Quantity = quantity
	p.MinimumStock = minimumStock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewStockAdjustedEvent(p))

	return nil
}

// StockStatus derives the stock classification from quantity and minimum stock
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Quantity <= 0:
		return StockStatusCritical
	case p.Quantity < p.MinimumStock:
		return StockStatusLow
	default:
		return StockStatusInStock
	}
}

// HasStock reports whether the requested quantity can be fulfilled
func (p *Product) HasStock(requested int) bool {
	return p.Quantity >= requested
}

func validateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
