package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/report"
	"github.com/stockroom/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	activitydomain "github.com/stockroom/backend/internal/domain/activity"
)

// seedSalesData creates two customers, three products and three orders,
// one of which is canceled and must not count toward any aggregate.
func seedSalesData(t *testing.T, db *gorm.DB) {
	t.Helper()

	ana := mustCustomer(t, db, "Ana Souza", "ana@example.com")
	bruno := mustCustomer(t, db, "Bruno Lima", "bruno@example.com")

	notebook := mustProduct(t, db, "NB-200", "2000.00", 50, 5)
	mouse := mustProduct(t, db, "MS-200", "100.00", 50, 5)
	keyboard := mustProduct(t, db, "KB-200", "250.00", 50, 5)

	// 1x notebook + 2x mouse = 2200.00
	mustOrder(t, db, "#60001", ana, []trade.LineItem{
		{ProductID: notebook.ID, Quantity: 1, Price: decimal.RequireFromString("2000.00")},
		{ProductID: mouse.ID, Quantity: 2, Price: decimal.RequireFromString("100.00")},
	})

	// 4x keyboard = 1000.00
	mustOrder(t, db, "#60002", bruno, []trade.LineItem{
		{ProductID: keyboard.ID, Quantity: 4, Price: decimal.RequireFromString("250.00")},
	})

	canceled := mustOrder(t, db, "#60003", bruno, []trade.LineItem{
		{ProductID: notebook.ID, Quantity: 10, Price: decimal.RequireFromString("2000.00")},
	})
	require.NoError(t, canceled.UpdateStatus(trade.OrderStatusCanceled))
	require.NoError(t, db.Save(canceled).Error)
}

func wideRange() report.DateRange {
	now := time.Now().UTC()
	return report.DateRange{Start: now.Add(-24 * time.Hour), End: now.Add(24 * time.Hour)}
}

func TestGormSalesReportRepository_Overview(t *testing.T) {
	db := setupTestDB(t)
	seedSalesData(t, db)
	repo := NewGormSalesReportRepository(db)

	overview, err := repo.Overview(context.Background(), wideRange())
	require.NoError(t, err)

	assert.True(t, overview.TotalSales.Equal(decimal.RequireFromString("3200")),
		"canceled orders must be excluded, got %s", overview.TotalSales)
	assert.Equal(t, int64(2), overview.OrderCount)
	assert.True(t, overview.AverageTicket.Equal(decimal.RequireFromString("1600")))
	assert.Equal(t, int64(7), overview.ProductsSold)
}

func TestGormSalesReportRepository_TopProducts(t *testing.T) {
	db := setupTestDB(t)
	seedSalesData(t, db)
	repo := NewGormSalesReportRepository(db)

	top, err := repo.TopProducts(context.Background(), wideRange(), 5)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "Product NB-200", top[0].Name)
	assert.Equal(t, int64(1), top[0].Quantity)
	assert.True(t, top[0].Revenue.Equal(decimal.RequireFromString("2000")))

	assert.Equal(t, "Product KB-200", top[1].Name)

	limited, err := repo.TopProducts(context.Background(), wideRange(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGormSalesReportRepository_SalesByCategory(t *testing.T) {
	db := setupTestDB(t)
	seedSalesData(t, db)
	repo := NewGormSalesReportRepository(db)

	rows, err := repo.SalesByCategory(context.Background(), wideRange())
	require.NoError(t, err)
	require.Len(t, rows, 1, "all fixture products share one category")

	assert.Equal(t, "electronics", rows[0].Category)
	assert.Equal(t, int64(7), rows[0].Quantity)
	assert.True(t, rows[0].Revenue.Equal(decimal.RequireFromString("3200")))
}

func TestGormSalesReportRepository_SalesByPeriod(t *testing.T) {
	db := setupTestDB(t)
	seedSalesData(t, db)
	repo := NewGormSalesReportRepository(db)

	rows, err := repo.SalesByPeriod(context.Background(), wideRange())
	require.NoError(t, err)
	require.Len(t, rows, 1, "all fixture orders were placed today")

	assert.Equal(t, int64(2), rows[0].OrderCount)
	assert.True(t, rows[0].Revenue.Equal(decimal.RequireFromString("3200")))
}

func TestGormSalesReportRepository_SalesDetails(t *testing.T) {
	db := setupTestDB(t)
	seedSalesData(t, db)
	repo := NewGormSalesReportRepository(db)

	rows, err := repo.SalesDetails(context.Background(), wideRange())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byNumber := make(map[string]report.SalesDetail, len(rows))
	for _, row := range rows {
		byNumber[row.OrderNumber] = row
	}

	first := byNumber["#60001"]
	assert.Equal(t, "Ana Souza", first.CustomerName)
	assert.Equal(t, int64(3), first.ItemCount)
	assert.True(t, first.Total.Equal(decimal.RequireFromString("2200")))
}

func TestGormSalesReportRepository_DashboardStats(t *testing.T) {
	db := setupTestDB(t)
	seedSalesData(t, db)
	mustProduct(t, db, "LOW-200", "10.00", 2, 10)
	repo := NewGormSalesReportRepository(db)

	stats, err := repo.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.MonthRevenue.Equal(decimal.RequireFromString("3200")))
	assert.True(t, stats.RevenueDelta.IsZero(), "no previous month data means no delta")
	assert.Equal(t, int64(2), stats.OrderCount)
	assert.Equal(t, int64(4), stats.ProductCount)
	assert.Equal(t, int64(1), stats.LowStockCount)
}

func TestGormSalesReportRepository_InventoryStats(t *testing.T) {
	db := setupTestDB(t)
	mustProduct(t, db, "INV-001", "100.00", 10, 5)
	mustProduct(t, db, "INV-002", "50.00", 2, 5)
	mustProduct(t, db, "INV-003", "20.00", 0, 5)
	repo := NewGormSalesReportRepository(db)

	stats, err := repo.InventoryStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.True(t, stats.StockValue.Equal(decimal.RequireFromString("1100")))
	assert.Equal(t, int64(2), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.CriticalCount)
}

func TestGormActivityRepository_AppendAndFindRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormActivityRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, desc := range []string{"first entry", "second entry", "third entry"} {
		entry, err := activitydomain.New(activitydomain.TypeOrder, desc, nil)
		require.NoError(t, err)
		entry.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Append(ctx, entry))
	}

	entries, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third entry", entries[0].Description)
	assert.Equal(t, "second entry", entries[1].Description)
}
