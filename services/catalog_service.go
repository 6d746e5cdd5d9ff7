package services

import (
	"errors"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/repository"
	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// CatalogService is the read side of the restaurant/dish catalog.
type CatalogService struct {
	RestRepo *repository.RestaurantRepository
	DishRepo *repository.DishRepository
}

func NewCatalogService(rr *repository.RestaurantRepository, dr *repository.DishRepository) *CatalogService {
	return &CatalogService{RestRepo: rr, DishRepo: dr}
}

func (s *CatalogService) Restaurants() ([]entity.Restaurant, error) {
	return s.RestRepo.List()
}

func (s *CatalogService) SearchRestaurants(name string) ([]entity.Restaurant, error) {
	return s.RestRepo.Search(name)
}

func (s *CatalogService) Dishes(restID uint) ([]entity.Dish, error) {
	if _, err := s.RestRepo.FindByID(restID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.DishRepo.ListByRestaurant(restID)
}

func (s *CatalogService) SearchDishesInRestaurant(restID uint, name string) ([]entity.Dish, error) {
	return s.DishRepo.SearchInRestaurant(restID, name)
}

func (s *CatalogService) SearchDishes(name string) ([]entity.Dish, error) {
	return s.DishRepo.Search(name)
}

func (s *CatalogService) Dish(dishID uint) (*entity.Dish, error) {
	d, err := s.DishRepo.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}
