package handler

import (
	"github.com/gin-gonic/gin"

	"udaan/internal/domain"
	"udaan/internal/service"
)

// identity 从 AuthJWT 注入的上下文还原请求者身份
func identity(c *gin.Context) service.Identity {
	return service.Identity{
		UserID: c.GetString("userId"),
		Role:   domain.Role(c.GetString("role")),
	}
}
