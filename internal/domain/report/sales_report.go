package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange bounds a report query, inclusive on both ends
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overview summarizes sales over a date range
type Overview struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	OrderCount    int64           `json:"order_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	ProductsSold  int64           `json:"products_sold"`
}

// TopProduct is one row of the best-sellers ranking
type TopProduct struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategorySales aggregates revenue per product category
type CategorySales struct {
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PeriodSales aggregates revenue per day
type PeriodSales struct {
	Period     string          `json:"period"`
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// SalesDetail is one per-order row of the detailed report section
type SalesDetail struct {
	OrderID      string          `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int64           `json:"item_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SalesReport is the full aggregated view for a date range
type SalesReport struct {
	Overview        Overview        `json:"overview"`
	TopProducts     []TopProduct    `json:"top_products"`
	SalesByCategory []CategorySales `json:"sales_by_category"`
	SalesByPeriod   []PeriodSales   `json:"sales_by_period"`
	SalesDetails    []SalesDetail   `json:"sales_details"`
}

// DashboardStats backs the dashboard header cards
type DashboardStats struct {
	MonthRevenue  decimal.Decimal `json:"month_revenue"`
	RevenueDelta  decimal.Decimal `json:"revenue_delta_percent"`
	OrderCount    int64           `json:"order_count"`
	ProductCount  int64           `json:"product_count"`
	LowStockCount int64           `json:"low_stock_count"`
}

// InventoryStats summarizes the current stock position
type InventoryStats struct {
	TotalProducts int64           `json:"total_products"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStockCount int64           `json:"low_stock_count"`
	CriticalCount int64           `json:"critical_count"`
}
