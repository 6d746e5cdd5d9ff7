package controllers

import (
	"strconv"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/pkg/resp"
	"github.com/E-W-N-K/course-project/repository"
	"github.com/E-W-N-K/course-project/services"
	"github.com/E-W-N-K/course-project/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminController covers catalog management (restaurant/dish CRUD with
// image upload), the administrative order view and user management.
type AdminController struct {
	RestRepo  *repository.RestaurantRepository
	DishRepo  *repository.DishRepository
	UserRepo  *repository.UserRepository
	OrderSvc  *services.OrderService
	UploadDir string
}

func NewAdminController(rr *repository.RestaurantRepository, dr *repository.DishRepository, ur *repository.UserRepository, os *services.OrderService, uploadDir string) *AdminController {
	return &AdminController{RestRepo: rr, DishRepo: dr, UserRepo: ur, OrderSvc: os, UploadDir: uploadDir}
}

// ----- Restaurants -----

type RestaurantIn struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Address     string `form:"address" json:"address"`
	Phone       string `form:"phone" json:"phone"`
	Description string `form:"description" json:"description"`
	URL         string `form:"url" json:"url"`
}

// POST /admin/restaurants
func (h *AdminController) CreateRestaurant(c *gin.Context) {
	var req RestaurantIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := entity.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		URL:         req.URL,
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUpload(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		rest.URL = url
	}

	if err := h.RestRepo.Create(&rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /admin/restaurants/:id
func (h *AdminController) UpdateRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.RestRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var req RestaurantIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest.Name = req.Name
	rest.Address = req.Address
	rest.Phone = req.Phone
	rest.Description = req.Description
	if file, err := c.FormFile("image"); err == nil {
		if rest.URL != "" {
			utils.DeleteUpload(h.UploadDir, rest.URL)
		}
		url, err := utils.SaveUpload(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		rest.URL = url
	} else if req.URL != "" {
		rest.URL = req.URL
	}

	if err := h.RestRepo.Save(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /admin/restaurants/:id
func (h *AdminController) DeleteRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.RestRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if rest.URL != "" {
		utils.DeleteUpload(h.UploadDir, rest.URL)
	}
	if err := h.RestRepo.Delete(rest.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// ----- Dishes -----

type DishIn struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
	Price       string `form:"price" json:"price" binding:"required"`
	Weight      int    `form:"weight" json:"weight"`
	URL         string `form:"url" json:"url"`
}

// POST /admin/restaurants/:id/dishes
func (h *AdminController) CreateDish(c *gin.Context) {
	restID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if _, err := h.RestRepo.FindByID(uint(restID)); err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var req DishIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		resp.BadRequest(c, "invalid price")
		return
	}

	dish := entity.Dish{
		RestaurantID: uint(restID),
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		Weight:       req.Weight,
		URL:          req.URL,
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveUpload(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		dish.URL = url
	}

	if err := h.DishRepo.Create(&dish); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}

// PUT /admin/dishes/:id
func (h *AdminController) UpdateDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	dish, err := h.DishRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "dish not found")
		return
	}

	var req DishIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		resp.BadRequest(c, "invalid price")
		return
	}

	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = price
	dish.Weight = req.Weight
	if file, err := c.FormFile("image"); err == nil {
		if dish.URL != "" {
			utils.DeleteUpload(h.UploadDir, dish.URL)
		}
		url, err := utils.SaveUpload(c, file, h.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		dish.URL = url
	} else if req.URL != "" {
		dish.URL = req.URL
	}

	if err := h.DishRepo.Save(dish); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /admin/dishes/:id
func (h *AdminController) DeleteDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	dish, err := h.DishRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "dish not found")
		return
	}
	if dish.URL != "" {
		utils.DeleteUpload(h.UploadDir, dish.URL)
	}
	if err := h.DishRepo.Delete(dish.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// ----- Orders -----

// GET /admin/orders?status=&userId=
func (h *AdminController) ListOrders(c *gin.Context) {
	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		status = &st
	}
	var userID *uint
	if s := c.Query("userId"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			resp.BadRequest(c, "invalid user id")
			return
		}
		u := uint(id)
		userID = &u
	}

	orders, err := h.OrderSvc.ListAll(status, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /admin/orders/:id/status?status=
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	status := entity.OrderStatus(c.Query("status"))

	order, err := h.OrderSvc.AdminUpdateStatus(uint(id), status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// ----- Users -----

// GET /admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.UserRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// DELETE /admin/users/:id
func (h *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	ok, err := h.UserRepo.Exists(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "user not found")
		return
	}
	if err := h.UserRepo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
