package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderNumber  string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"orderNumber"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"totalAmount"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CustomerName *string         `gorm:"type:varchar(255)" json:"customerName,omitempty"`
	TableNumber  *int            `json:"tableNumber,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updatedAt"`
}

// Subtotal is the sum of price x quantity over the line items. TotalAmount is
// stored independently and is not required to match it.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}
