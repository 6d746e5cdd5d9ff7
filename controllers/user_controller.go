package controllers

import (
	"errors"

	"github.com/E-W-N-K/course-project/pkg/resp"
	"github.com/E-W-N-K/course-project/services"
	"github.com/E-W-N-K/course-project/utils"
	"github.com/gin-gonic/gin"
)

type ProfileUpdateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type PasswordChangeRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type DeliveryInfoRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController {
	return &UserController{Svc: s}
}

// GET /user/profile
func (u *UserController) Profile(c *gin.Context) {
	user, err := u.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /user/profile
func (u *UserController) UpdateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.Svc.UpdateProfile(utils.CurrentUserID(c), req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /user/password
func (u *UserController) ChangePassword(c *gin.Context) {
	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := u.Svc.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password changed"})
}

// GET /user/delivery-info
func (u *UserController) DeliveryInfo(c *gin.Context) {
	phone, address, err := u.Svc.DeliveryInfo(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNoDeliveryInfo) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"phone": phone, "address": address})
}

// PUT /user/delivery-info
func (u *UserController) SetDeliveryInfo(c *gin.Context) {
	var req DeliveryInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.Svc.SetDeliveryInfo(utils.CurrentUserID(c), req.Phone, req.Address)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"phone": user.Phone, "address": user.Address})
}
