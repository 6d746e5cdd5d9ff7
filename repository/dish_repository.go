package repository

import (
	"github.com/E-W-N-K/course-project/entity"
	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

// GetDishBasics is the catalog lookup the cart depends on (id, price).
func (r *DishRepository) GetDishBasics(dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Select("id, price, restaurant_id").First(&d, dishID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) FindByID(dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, dishID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) ListByRestaurant(restID uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("restaurant_id = ?", restID).Order("id").Find(&out).Error
	return out, err
}

func (r *DishRepository) SearchInRestaurant(restID uint, name string) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("restaurant_id = ? AND name LIKE ?", restID, "%"+name+"%").
		Order("id").Find(&out).Error
	return out, err
}

func (r *DishRepository) Search(name string) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Preload("Restaurant").
		Where("name LIKE ?", "%"+name+"%").Order("id").Find(&out).Error
	return out, err
}

func (r *DishRepository) Create(d *entity.Dish) error { return r.DB.Create(d).Error }

func (r *DishRepository) Save(d *entity.Dish) error { return r.DB.Save(d).Error }

func (r *DishRepository) Delete(dishID uint) error {
	return r.DB.Unscoped().Delete(&entity.Dish{}, dishID).Error
}
