package repository

import (
	"github.com/E-W-N-K/course-project/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Search(name string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("name LIKE ?", "%"+name+"%").Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// Delete removes the restaurant and its dishes in one transaction,
// children first.
func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("restaurant_id = ?", id).Delete(&entity.Dish{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Restaurant{}, id).Error
	})
}
