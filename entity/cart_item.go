package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem keeps Price as a snapshot of the dish price at the time of the
// first add; repeat adds only bump Quantity. One row per (cart, dish).
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"not null;uniqueIndex:idx_cart_dish" json:"cartId"`
	Cart   Cart `json:"-"`

	DishID uint `gorm:"not null;uniqueIndex:idx_cart_dish" json:"dishId"`
	Dish   Dish `json:"dish"`

	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
