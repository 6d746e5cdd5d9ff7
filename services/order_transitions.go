package services

import (
	"errors"
	"time"

	"github.com/E-W-N-K/course-project/entity"
	"gorm.io/gorm"
)

// Status machine: PENDING -> COMPLETED (admin), PENDING -> CANCELLED (user
// or admin). COMPLETED and CANCELLED are terminal on the user-facing path;
// the administrative update bypasses the machine entirely.

// Cancel is the user-facing transition. Only the order's owner may cancel,
// and only while the order is still PENDING.
func (s *OrderService) Cancel(userID, orderID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if o.UserID != userID {
			return ErrForbidden
		}
		if o.Status != entity.StatusPending {
			return ErrInvalidTransition
		}

		now := time.Now()
		ok, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusPending, entity.StatusCancelled, now)
		if err != nil {
			return err
		}
		if !ok {
			// lost a race with another transition
			return ErrInvalidTransition
		}
		o.Status = entity.StatusCancelled
		o.UpdateTime = now
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(out.UserID, out.ID, out.Status)
	return out, nil
}

// AdminUpdateStatus sets any valid status unconditionally and refreshes
// UpdateTime.
func (s *OrderService) AdminUpdateStatus(orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		now := time.Now()
		if err := s.Repo.UpdateStatus(tx, o.ID, status, now); err != nil {
			return err
		}
		o.Status = status
		o.UpdateTime = now
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(out.UserID, out.ID, out.Status)
	return out, nil
}
