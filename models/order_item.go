package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. MenuItemID is a lookup-only reference:
// the menu item may be deleted later, in which case MenuItem stays nil.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;index" json:"orderId"`
	MenuItemID uint            `gorm:"not null;index" json:"menuItemId"`
	MenuItem   *MenuItem       `gorm:"foreignKey:MenuItemID;references:ID" json:"menuItem"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt  time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updatedAt"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
