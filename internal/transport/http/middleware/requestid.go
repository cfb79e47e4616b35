package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID 对外透传的请求 ID 头
	HeaderRequestID = "X-Request-ID"
	// KeyRequestID 上下文键，访问日志从这里取
	KeyRequestID = "requestId"
)

// RequestID 复用调用方带来的 ID（防滥用限长），否则生成新的；响应头回传
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
