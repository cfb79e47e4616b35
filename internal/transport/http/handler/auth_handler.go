package handler

import (
	"github.com/gin-gonic/gin"

	"udaan/internal/service"
	resp "udaan/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err)
		return
	}
	u, err := h.users.Register(c.Request.Context(), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, u)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err)
		return
	}
	tok, u, err := h.users.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, gin.H{"token": tok, "user": u})
}
