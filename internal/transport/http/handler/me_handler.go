package handler

import (
	"github.com/gin-gonic/gin"

	"udaan/internal/service"
	resp "udaan/internal/transport/http/response"
)

// MeHandler 登录用户自身的档案/收件箱/首页聚合
type MeHandler struct {
	users *service.UserService
}

func NewMeHandler(users *service.UserService) *MeHandler {
	return &MeHandler{users: users}
}

// Get GET /me
func (h *MeHandler) Get(c *gin.Context) {
	u, err := h.users.GetProfile(c.Request.Context(), identity(c).UserID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, u)
}

// UpdateProfile PUT /me/profile（学生本人）
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var in service.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err)
		return
	}
	u, err := h.users.UpdateProfile(c.Request.Context(), identity(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, u)
}

// Dashboard GET /me/dashboard
func (h *MeHandler) Dashboard(c *gin.Context) {
	d, err := h.users.Dashboard(c.Request.Context(), identity(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, d)
}

// Notifications GET /me/notifications
func (h *MeHandler) Notifications(c *gin.Context) {
	ns, err := h.users.ListNotifications(c.Request.Context(), identity(c).UserID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, ns)
}

// MarkNotificationRead PATCH /me/notifications/:id
func (h *MeHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.users.MarkNotificationRead(c.Request.Context(), identity(c).UserID, c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, gin.H{"id": c.Param("id"), "read": true})
}
