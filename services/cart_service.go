package services

import (
	"errors"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/pkg/userlock"
	"github.com/E-W-N-K/course-project/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns the mutable per-user cart and its Total invariant.
// Every mutation runs under the user's lock and inside one transaction,
// and recomputes Total from the post-mutation line set.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	DishRepo *repository.DishRepository
	Locks    *userlock.Locker
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository, locks *userlock.Locker) *CartService {
	return &CartService{DB: db, CartRepo: cr, DishRepo: dr, Locks: locks}
}

// CalculateTotal is the exact-decimal sum of price x quantity; zero for an
// empty line set.
func CalculateTotal(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Get returns the user's cart, creating an empty one if none exists.
// The persisted total is recomputed from the current lines before returning.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	defer s.Locks.Lock(userID)()

	var cart *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		cart, err = s.reload(tx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddDish puts quantity units of the dish into the cart. A repeat add merges
// into the existing line and keeps the originally snapshotted price; the
// catalog price is only read for a brand-new line.
func (s *CartService) AddDish(userID, dishID uint, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	dish, err := s.DishRepo.GetDishBasics(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	defer s.Locks.Lock(userID)()

	var cart *entity.Cart
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		existing, err := s.CartRepo.FindItemByDish(tx, c.ID, dishID)
		switch {
		case err == nil:
			existing.Quantity += quantity
			if err := s.CartRepo.SaveItem(tx, existing); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line := &entity.CartItem{
				CartID:   c.ID,
				DishID:   dishID,
				Quantity: quantity,
				Price:    dish.Price,
			}
			if err := s.CartRepo.CreateItem(tx, line); err != nil {
				return err
			}
		default:
			return err
		}

		cart, err = s.reload(tx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem takes quantity units off the line; the whole line goes away
// when quantity covers it. The line must belong to the caller's cart.
func (s *CartService) RemoveItem(userID, cartItemID uint, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	defer s.Locks.Lock(userID)()

	var cart *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.GetItem(tx, cartItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		var c entity.Cart
		if err := tx.First(&c, item.CartID).Error; err != nil {
			return err
		}
		if c.UserID != userID {
			return ErrForbidden
		}

		if quantity >= item.Quantity {
			if err := s.CartRepo.DeleteItem(tx, item.ID); err != nil {
				return err
			}
		} else {
			item.Quantity -= quantity
			if err := s.CartRepo.SaveItem(tx, item); err != nil {
				return err
			}
		}

		cart, err = s.reload(tx, &c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear drops every line and resets the total. Clearing an absent or empty
// cart is a successful no-op.
func (s *CartService) Clear(userID uint) error {
	defer s.Locks.Lock(userID)()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.Find(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := s.CartRepo.DeleteItems(tx, cart.ID); err != nil {
			return err
		}
		return s.CartRepo.SaveTotal(tx, cart.ID, decimal.Zero)
	})
}

// reload rereads the line set inside the same transaction, after any
// mutation is visible, persists the derived total and returns the cart
// with its lines attached.
func (s *CartService) reload(tx *gorm.DB, c *entity.Cart) (*entity.Cart, error) {
	items, err := s.CartRepo.ItemsWithDish(tx, c.ID)
	if err != nil {
		return nil, err
	}
	total := CalculateTotal(items)
	if !total.Equal(c.Total) {
		if err := s.CartRepo.SaveTotal(tx, c.ID, total); err != nil {
			return nil, err
		}
	}
	c.Total = total
	c.Items = items
	return c, nil
}
