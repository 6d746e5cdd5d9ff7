package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a historical record: PriceAtOrder is copied from the cart
// line at checkout and never follows later catalog price changes.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `gorm:"not null" json:"dishId"`
	Dish   Dish `json:"-"`

	Quantity     int             `gorm:"not null" json:"quantity"`
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"priceAtOrder"`
}
