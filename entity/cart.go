package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the per-user staging area. Total is derived from Items and
// recomputed after every mutation; it is persisted so GET /cart stays cheap.
type Cart struct {
	gorm.Model
	UserID uint            `gorm:"uniqueIndex" json:"userId"`
	User   User            `json:"-"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
