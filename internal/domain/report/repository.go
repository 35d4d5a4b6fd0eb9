package report

import "context"

// SalesReportRepository is the read-model interface behind the reporting
// endpoints. Canceled orders are excluded from every aggregate.
type SalesReportRepository interface {
	// Overview aggregates totals over the range
	Overview(ctx context.Context, dateRange DateRange) (*Overview, error)

	// TopProducts ranks products by revenue over the range
	TopProducts(ctx context.Context, dateRange DateRange, limit int) ([]TopProduct, error)

	// SalesByCategory aggregates revenue per product category
	SalesByCategory(ctx context.Context, dateRange DateRange) ([]CategorySales, error)

	// SalesByPeriod aggregates revenue per day
	SalesByPeriod(ctx context.Context, dateRange DateRange) ([]PeriodSales, error)

	// SalesDetails lists per-order rows over the range
	SalesDetails(ctx context.Context, dateRange DateRange) ([]SalesDetail, error)

	// DashboardStats aggregates the dashboard header numbers
	DashboardStats(ctx context.Context) (*DashboardStats, error)

	// InventoryStats aggregates the current stock position
	InventoryStats(ctx context.Context) (*InventoryStats, error)
}
