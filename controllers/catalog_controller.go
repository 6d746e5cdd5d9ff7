package controllers

import (
	"strconv"

	"github.com/E-W-N-K/course-project/pkg/resp"
	"github.com/E-W-N-K/course-project/services"
	"github.com/gin-gonic/gin"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /restaurants
func (h *CatalogController) Restaurants(c *gin.Context) {
	items, err := h.Svc.Restaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/search?name=
func (h *CatalogController) SearchRestaurants(c *gin.Context) {
	items, err := h.Svc.SearchRestaurants(c.Query("name"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id/dishes
func (h *CatalogController) Dishes(c *gin.Context) {
	restID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.Svc.Dishes(uint(restID))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id/dishes/search?name=
func (h *CatalogController) SearchDishesInRestaurant(c *gin.Context) {
	restID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.Svc.SearchDishesInRestaurant(uint(restID), c.Query("name"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /dishes/search?name=
func (h *CatalogController) SearchDishes(c *gin.Context) {
	items, err := h.Svc.SearchDishes(c.Query("name"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /dishes/:id
func (h *CatalogController) DishDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	dish, err := h.Svc.Dish(uint(id))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, dish)
}
