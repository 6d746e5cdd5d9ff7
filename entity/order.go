package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is immutable after checkout except for Status/UpdateTime.
type Order struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	OrderTime  time.Time       `gorm:"not null" json:"orderTime"`
	UpdateTime time.Time       `gorm:"not null" json:"updateTime"`
	Status     OrderStatus     `gorm:"not null;default:PENDING" json:"status"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
