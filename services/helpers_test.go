package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/pkg/userlock"
	"github.com/E-W-N-K/course-project/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. One pooled
// connection keeps the shared-cache memory DB alive for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Dish{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newServices(t *testing.T, db *gorm.DB) (*CartService, *OrderService) {
	t.Helper()
	cartRepo := repository.NewCartRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	locks := userlock.New()
	return NewCartService(db, cartRepo, dishRepo, locks),
		NewOrderService(db, orderRepo, cartRepo, locks)
}

func seedDish(t *testing.T, db *gorm.DB, name, price string) uint {
	t.Helper()
	rest := entity.Restaurant{Name: "Bistro " + name}
	require.NoError(t, db.Create(&rest).Error)
	dish := entity.Dish{
		RestaurantID: rest.ID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&dish).Error)
	return dish.ID
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.String())
}
