package repository

import (
	"time"

	"github.com/E-W-N-K/course-project/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForUserByStatus(userID uint, status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ? AND status = ?", userID, status).
		Order("id DESC").Find(&out).Error
	return out, err
}

// ListAll serves the admin view; nil filters mean "any".
func (r *OrderRepository) ListAll(status *entity.OrderStatus, userID *uint) ([]entity.Order, error) {
	db := r.DB.Model(&entity.Order{})
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}
	var out []entity.Order
	err := db.Order("id DESC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips status only when the row is still in `from`,
// so a concurrent transition loses cleanly instead of overwriting.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus, now time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "update_time": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatus is the unconditional administrative variant.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, to entity.OrderStatus, now time.Time) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": to, "update_time": now}).Error
}
