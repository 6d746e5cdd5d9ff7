package services

import (
	"errors"
	"time"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/pkg/userlock"
	"github.com/E-W-N-K/course-project/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusNotifier pushes order status changes to the order's owner.
// Implemented by ws.Hub; may be nil when push is not wired (tests).
type StatusNotifier interface {
	OrderStatusChanged(userID, orderID uint, status entity.OrderStatus)
}

// OrderService is the checkout engine: it converts a non-empty cart into an
// order atomically and owns the order status machine.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Locks    *userlock.Locker
	Notifier StatusNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, locks *userlock.Locker) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Locks: locks}
}

// Checkout snapshots the cart lines, writes the order with its items and
// clears the cart, all in one transaction. Either everything lands or the
// cart still shows its original contents. Prices come from the cart
// snapshot, never re-read from the catalog.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	defer s.Locks.Lock(userID)()

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.Find(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}
		lines, err := s.CartRepo.Items(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		now := time.Now()
		order := entity.Order{
			UserID:     userID,
			OrderTime:  now,
			UpdateTime: now,
			Status:     entity.StatusPending,
			Total:      CalculateTotal(lines),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, line := range lines {
			oi := entity.OrderItem{
				OrderID:      order.ID,
				DishID:       line.DishID,
				Quantity:     line.Quantity,
				PriceAtOrder: line.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		if err := s.CartRepo.DeleteItems(tx, cart.ID); err != nil {
			return err
		}
		if err := s.CartRepo.SaveTotal(tx, cart.ID, decimal.Zero); err != nil {
			return err
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) ListForUserByStatus(userID uint, status entity.OrderStatus) ([]entity.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Repo.ListForUserByStatus(userID, status)
}

// DetailForUser returns the order with its items; Forbidden when the order
// belongs to someone else.
func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// ListAll is the admin view with optional status/user filters.
func (s *OrderService) ListAll(status *entity.OrderStatus, userID *uint) ([]entity.Order, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Repo.ListAll(status, userID)
}

func (s *OrderService) notify(userID, orderID uint, status entity.OrderStatus) {
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(userID, orderID, status)
	}
}
