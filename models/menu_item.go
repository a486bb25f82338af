package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type MenuItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        Category        `gorm:"type:varchar(30);not null;index" json:"category"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Ingredients     []string        `gorm:"type:text;serializer:json" json:"ingredients"`
	PreparationTime int             `gorm:"not null;default:15" json:"preparationTime"`
	ImageURL        string          `gorm:"type:varchar(512)" json:"imageUrl"`
	IsAvailable     bool            `gorm:"not null;index" json:"isAvailable"`
	CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updatedAt"`
}
