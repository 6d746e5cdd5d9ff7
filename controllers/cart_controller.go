package controllers

import (
	"strconv"

	"github.com/E-W-N-K/course-project/pkg/resp"
	"github.com/E-W-N-K/course-project/services"
	"github.com/E-W-N-K/course-project/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc      *services.CartService
	OrderSvc *services.OrderService
}

func NewCartController(s *services.CartService, os *services.OrderService) *CartController {
	return &CartController{Svc: s, OrderSvc: os}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart, err := h.Svc.Get(uid)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/add/:dishId?quantity=
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	dishID, err := strconv.Atoi(c.Param("dishId"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	qty, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil {
		resp.BadRequest(c, "invalid quantity")
		return
	}

	cart, err := h.Svc.AddDish(uid, uint(dishID), qty)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/remove/:cartItemId?quantity=
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.Atoi(c.Param("cartItemId"))
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	qty, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil {
		resp.BadRequest(c, "invalid quantity")
		return
	}

	cart, err := h.Svc.RemoveItem(uid, uint(itemID), qty)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	order, err := h.OrderSvc.Checkout(uid)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, order)
}
