package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/report"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements SalesReportRepository with SQL
// aggregation queries. Canceled orders never count toward revenue.
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// rangedOrders scopes a query on the orders table to the date range,
// excluding canceled orders
func (r *GormSalesReportRepository) rangedOrders(ctx context.Context, dateRange report.DateRange) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Where("orders.status <> ?", "canceled").
		Where("orders.created_at >= ? AND orders.created_at <= ?", dateRange.Start, dateRange.End)
}

// Overview aggregates totals over the range
func (r *GormSalesReportRepository) Overview(ctx context.Context, dateRange report.DateRange) (*report.Overview, error) {
	var row struct {
		TotalSales decimal.Decimal
		OrderCount int64
	}
	if err := r.rangedOrders(ctx, dateRange).
		Select("COALESCE(SUM(orders.total), 0) AS total_sales, COUNT(*) AS order_count").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	var productsSold int64
	if err := r.rangedOrders(ctx, dateRange).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&productsSold).Error; err != nil {
		return nil, err
	}

	overview := &report.Overview{
		TotalSales:    row.TotalSales,
		OrderCount:    row.OrderCount,
		AverageTicket: decimal.Zero,
		ProductsSold:  productsSold,
	}
	if row.OrderCount > 0 {
		overview.AverageTicket = row.TotalSales.DivRound(decimal.NewFromInt(row.OrderCount), 2)
	}
	return overview, nil
}

// TopProducts ranks products by revenue over the range
func (r *GormSalesReportRepository) TopProducts(ctx context.Context, dateRange report.DateRange, limit int) ([]report.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []report.TopProduct
	if err := r.rangedOrders(ctx, dateRange).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Select("order_items.product_id AS product_id, products.name AS name, " +
			"SUM(order_items.quantity) AS quantity, " +
			"SUM(order_items.quantity * order_items.price) AS revenue").
		Group("order_items.product_id, products.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesByCategory aggregates revenue per product category
func (r *GormSalesReportRepository) SalesByCategory(ctx context.Context, dateRange report.DateRange) ([]report.CategorySales, error) {
	var rows []report.CategorySales
	if err := r.rangedOrders(ctx, dateRange).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Select("products.category AS category, " +
			"SUM(order_items.quantity) AS quantity, " +
			"SUM(order_items.quantity * order_items.price) AS revenue").
		Group("products.category").
		Order("revenue DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesByPeriod aggregates revenue per day
func (r *GormSalesReportRepository) SalesByPeriod(ctx context.Context, dateRange report.DateRange) ([]report.PeriodSales, error) {
	var rows []report.PeriodSales
	if err := r.rangedOrders(ctx, dateRange).
		Select("DATE(orders.created_at) AS period, COUNT(*) AS order_count, " +
			"COALESCE(SUM(orders.total), 0) AS revenue").
		Group("DATE(orders.created_at)").
		Order("period ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesDetails lists per-order rows over the range
func (r *GormSalesReportRepository) SalesDetails(ctx context.Context, dateRange report.DateRange) ([]report.SalesDetail, error) {
	var rows []report.SalesDetail
	if err := r.rangedOrders(ctx, dateRange).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Select("orders.id AS order_id, orders.order_number AS order_number, " +
			"customers.name AS customer_name, orders.status AS status, " +
			"orders.total AS total, SUM(order_items.quantity) AS item_count, " +
			"orders.created_at AS created_at").
		Group("orders.id, orders.order_number, customers.name, orders.status, orders.total, orders.created_at").
		Order("orders.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DashboardStats aggregates the dashboard header numbers. Revenue delta
// compares the current calendar month against the previous one.
func (r *GormSalesReportRepository) DashboardStats(ctx context.Context) (*report.DashboardStats, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	monthRevenue, err := r.revenueBetween(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}
	prevRevenue, err := r.revenueBetween(ctx, prevMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	delta := decimal.Zero
	if prevRevenue.IsPositive() {
		delta = monthRevenue.Sub(prevRevenue).
			DivRound(prevRevenue, 4).
			Mul(decimal.NewFromInt(100))
	}

	var orderCount int64
	if err := r.db.WithContext(ctx).Table("orders").
		Where("status <> ?", "canceled").
		Count(&orderCount).Error; err != nil {
		return nil, err
	}

	var productCount int64
	if err := r.db.WithContext(ctx).Table("products").Count(&productCount).Error; err != nil {
		return nil, err
	}

	lowStockCount, err := r.countLowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &report.DashboardStats{
		MonthRevenue:  monthRevenue,
		RevenueDelta:  delta,
		OrderCount:    orderCount,
		ProductCount:  productCount,
		LowStockCount: lowStockCount,
	}, nil
}

// InventoryStats aggregates the current stock position
func (r *GormSalesReportRepository) InventoryStats(ctx context.Context) (*report.InventoryStats, error) {
	var totals struct {
		TotalProducts int64
		StockValue    decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Table("products").
		Select("COUNT(*) AS total_products, COALESCE(SUM(quantity * price), 0) AS stock_value").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	lowStockCount, err := r.countLowStock(ctx)
	if err != nil {
		return nil, err
	}

	var criticalCount int64
	if err := r.db.WithContext(ctx).Table("products").
		Where("quantity <= 0").
		Count(&criticalCount).Error; err != nil {
		return nil, err
	}

	return &report.InventoryStats{
		TotalProducts: totals.TotalProducts,
		StockValue:    totals.StockValue,
		LowStockCount: lowStockCount,
		CriticalCount: criticalCount,
	}, nil
}

// revenueBetween sums non-canceled order totals in [start, end)
func (r *GormSalesReportRepository) revenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	if err := r.db.WithContext(ctx).Table("orders").
		Where("status <> ?", "canceled").
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

// countLowStock counts products at or below their minimum stock level
func (r *GormSalesReportRepository) countLowStock(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("products").
		Where("quantity < minimum_stock OR quantity <= 0").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSalesReportRepository implements SalesReportRepository
var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
