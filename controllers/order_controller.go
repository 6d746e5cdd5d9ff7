package controllers

import (
	"strconv"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/pkg/resp"
	"github.com/E-W-N-K/course-project/services"
	"github.com/E-W-N-K/course-project/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/status/:status
func (h *OrderController) ListByStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	status := entity.OrderStatus(c.Param("status"))
	orders, err := h.Svc.ListForUserByStatus(uid, status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Cancel(uid, uint(id))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, order)
}
