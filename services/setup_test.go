package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-admin/config"
	"github.com/yeremiapane/restaurant-admin/database"
	"github.com/yeremiapane/restaurant-admin/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database so tests never share rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func statusPtr(s models.OrderStatus) *models.OrderStatus { return &s }

func categoryPtr(c models.Category) *models.Category { return &c }

// mustMenuItem creates a valid menu item with the given name and price.
func mustMenuItem(t *testing.T, svc *MenuService, name, price string) *models.MenuItem {
	t.Helper()
	item, err := svc.Create(MenuItemInput{
		Name:            strPtr(name),
		Price:           decPtr(price),
		PreparationTime: intPtr(10),
	})
	require.NoError(t, err)
	return item
}

// line builds one order line at the given price snapshot.
func line(item *models.MenuItem, quantity int) OrderItemInput {
	return OrderItemInput{MenuItemID: item.ID, Quantity: quantity, Price: item.Price}
}

// mustOrder creates an order whose total is computed from its lines.
func mustOrder(t *testing.T, svc *OrderService, number string, status models.OrderStatus, lines ...OrderItemInput) *models.Order {
	t.Helper()
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	order, err := svc.Create(OrderInput{
		OrderNumber: number,
		Items:       lines,
		TotalAmount: &total,
		Status:      status,
	})
	require.NoError(t, err)
	return order
}
