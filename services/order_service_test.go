package services

import (
	"errors"
	"testing"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCheckoutSnapshotsCartIntoOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishA := seedDish(t, db, "Pizza", "10.00")
	dishB := seedDish(t, db, "Juice", "5.00")

	_, err := cartSvc.AddDish(userA, dishA, 2)
	require.NoError(t, err)
	_, err = cartSvc.AddDish(userA, dishB, 1)
	require.NoError(t, err)

	// later catalog changes must not affect the snapshot
	require.NoError(t, db.Model(&entity.Dish{}).
		Where("id = ?", dishA).Update("price", "42.00").Error)

	order, err := orderSvc.Checkout(userA)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, userA, order.UserID)
	assert.False(t, order.OrderTime.IsZero())
	assert.Equal(t, order.OrderTime, order.UpdateTime)
	requireDecimal(t, "25.00", order.Total)

	require.Len(t, order.Items, 2)
	byDish := map[uint]entity.OrderItem{}
	for _, it := range order.Items {
		byDish[it.DishID] = it
	}
	assert.Equal(t, 2, byDish[dishA].Quantity)
	requireDecimal(t, "10.00", byDish[dishA].PriceAtOrder)
	assert.Equal(t, 1, byDish[dishB].Quantity)
	requireDecimal(t, "5.00", byDish[dishB].PriceAtOrder)

	// cart is empty afterwards, ready for the next add
	cart, err := cartSvc.Get(userA)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	requireDecimal(t, "0", cart.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")

	// no cart at all
	_, err := orderSvc.Checkout(userA)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// cart exists but has no lines
	_, err = cartSvc.AddDish(userA, dishID, 1)
	require.NoError(t, err)
	require.NoError(t, cartSvc.Clear(userA))
	_, err = orderSvc.Checkout(userA)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutTwiceNeedsNewItems(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")

	_, err := cartSvc.AddDish(userA, dishID, 1)
	require.NoError(t, err)
	_, err = orderSvc.Checkout(userA)
	require.NoError(t, err)

	// the cart was cleared, a second checkout has nothing to convert
	_, err = orderSvc.Checkout(userA)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// the emptied cart is reused by the next add
	cart, err := cartSvc.AddDish(userA, dishID, 2)
	require.NoError(t, err)
	requireDecimal(t, "20.00", cart.Total)
}

func TestCheckoutRollsBackOnWriteFailure(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishA := seedDish(t, db, "Pizza", "10.00")
	dishB := seedDish(t, db, "Juice", "5.00")

	_, err := cartSvc.AddDish(userA, dishA, 2)
	require.NoError(t, err)
	_, err = cartSvc.AddDish(userA, dishB, 1)
	require.NoError(t, err)

	// fail the order line insert so the transaction aborts after the
	// order head has already been written
	boom := errors.New("write failed")
	const cb = "order_service_test:failOrderItems"
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register(cb, func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "order_items" {
			tx.AddError(boom)
		}
	}))

	_, err = orderSvc.Checkout(userA)
	require.ErrorIs(t, err, boom)

	require.NoError(t, db.Callback().Create().Remove(cb))

	// no order rows survived the rollback
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)

	// the cart is exactly as it was before the attempt
	cart, err := cartSvc.Get(userA)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	requireDecimal(t, "25.00", cart.Total)

	// and a retry goes through once the storage recovers
	order, err := orderSvc.Checkout(userA)
	require.NoError(t, err)
	requireDecimal(t, "25.00", order.Total)
	assert.Len(t, order.Items, 2)
}

func mustCheckout(t *testing.T, cartSvc *CartService, orderSvc *OrderService, userID, dishID uint) *entity.Order {
	t.Helper()
	_, err := cartSvc.AddDish(userID, dishID, 1)
	require.NoError(t, err)
	order, err := orderSvc.Checkout(userID)
	require.NoError(t, err)
	return order
}

func TestCancelPendingOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")
	order := mustCheckout(t, cartSvc, orderSvc, userA, dishID)

	cancelled, err := orderSvc.Cancel(userA, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	assert.False(t, cancelled.UpdateTime.Before(order.OrderTime))

	// persisted too
	var stored entity.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusCancelled, stored.Status)
}

func TestCancelGuards(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")
	order := mustCheckout(t, cartSvc, orderSvc, userA, dishID)

	_, err := orderSvc.Cancel(userA, 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = orderSvc.Cancel(userB, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// COMPLETED and CANCELLED are terminal for the user
	_, err = orderSvc.AdminUpdateStatus(order.ID, entity.StatusCompleted)
	require.NoError(t, err)
	_, err = orderSvc.Cancel(userA, order.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdminUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")
	order := mustCheckout(t, cartSvc, orderSvc, userA, dishID)

	updated, err := orderSvc.AdminUpdateStatus(order.ID, entity.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, updated.Status)

	// administrative updates are unconditional, even backwards
	updated, err = orderSvc.AdminUpdateStatus(order.ID, entity.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, updated.Status)

	_, err = orderSvc.AdminUpdateStatus(order.ID, entity.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = orderSvc.AdminUpdateStatus(9999, entity.StatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDetailForUser(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")
	order := mustCheckout(t, cartSvc, orderSvc, userA, dishID)

	got, err := orderSvc.DetailForUser(userA, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, got.Items, 1)
	requireDecimal(t, "10.00", got.Items[0].PriceAtOrder)

	_, err = orderSvc.DetailForUser(userB, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = orderSvc.DetailForUser(userA, 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListForUserByStatus(t *testing.T) {
	db := newTestDB(t)
	cartSvc, orderSvc := newServices(t, db)
	dishID := seedDish(t, db, "Pizza", "10.00")

	first := mustCheckout(t, cartSvc, orderSvc, userA, dishID)
	mustCheckout(t, cartSvc, orderSvc, userA, dishID)
	_, err := orderSvc.Cancel(userA, first.ID)
	require.NoError(t, err)

	pending, err := orderSvc.ListForUserByStatus(userA, entity.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	cancelled, err := orderSvc.ListForUserByStatus(userA, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Len(t, cancelled, 1)

	_, err = orderSvc.ListForUserByStatus(userA, entity.OrderStatus("NOPE"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	all, err := orderSvc.ListForUser(userA)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
