package persistence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shipping"
	"github.com/stockroom/backend/internal/domain/trade"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	activitydomain "github.com/stockroom/backend/internal/domain/activity"
)

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&trade.Order{},
		&trade.OrderItem{},
		&activitydomain.Activity{},
		&shipping.Carrier{},
		&shipping.Shipment{},
	)
	require.NoError(t, err)

	return db
}

// mustProduct creates and saves a product for test fixtures
func mustProduct(t *testing.T, db *gorm.DB, code string, price string, quantity, minimumStock int) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(code, "Product "+code, catalog.CategoryElectronics,
		decimal.RequireFromString(price), quantity, minimumStock)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

// mustCustomer creates and saves a customer for test fixtures
func mustCustomer(t *testing.T, db *gorm.DB, name, email string) *partner.Customer {
	t.Helper()

	customer, err := partner.NewCustomer(name, email)
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// mustOrder creates and saves an order for test fixtures
func mustOrder(t *testing.T, db *gorm.DB, orderNumber string, customer *partner.Customer, lines []trade.LineItem) *trade.Order {
	t.Helper()

	order, err := trade.NewOrder(orderNumber, customer.ID, trade.OrderStatusPending, lines)
	require.NoError(t, err)
	require.NoError(t, db.Session(&gorm.Session{FullSaveAssociations: true}).Create(order).Error)
	return order
}
