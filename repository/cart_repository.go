package repository

import (
	"errors"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, Total: decimal.Zero}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Find returns the cart without creating it; gorm.ErrRecordNotFound if absent.
func (r *CartRepository) Find(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Items(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepository) ItemsWithDish(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Preload("Dish").Where("cart_id = ?", cartID).Order("id").Find(&items).Error
	return items, err
}

// FindItemByDish locates the single line for (cart, dish), if any.
func (r *CartRepository) FindItemByDish(tx *gorm.DB, cartID, dishID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := tx.Where("cart_id = ? AND dish_id = ?", cartID, dishID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) GetItem(tx *gorm.DB, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := tx.First(&it, itemID).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Create(it).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Save(it).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, itemID).Error
}

// DeleteItems removes every line of the cart, children before parent update;
// the schema cascade is only a backstop.
func (r *CartRepository) DeleteItems(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) SaveTotal(tx *gorm.DB, cartID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", total).Error
}
