package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"udaan/internal/core/auth"
	"udaan/internal/transport/http/handler"
	mdw "udaan/internal/transport/http/middleware"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	Me           *handler.MeHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公开路由
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/jobs", h.Jobs.List)
	api.GET("/jobs/count", h.Jobs.Count)

	// 登录后路由（细粒度授权在服务层统一判定）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	authed.POST("/jobs", h.Jobs.Create)
	authed.POST("/jobs/:id/close", h.Jobs.Close)

	authed.POST("/applications", h.Applications.Apply)
	authed.GET("/applications", h.Applications.List)
	authed.DELETE("/applications/:id", h.Applications.Withdraw)
	authed.PATCH("/applications/:id/status", h.Applications.SetStatus)

	authed.GET("/me", h.Me.Get)
	authed.PUT("/me/profile", h.Me.UpdateProfile)
	authed.GET("/me/dashboard", h.Me.Dashboard)
	authed.GET("/me/notifications", h.Me.Notifications)
	authed.PATCH("/me/notifications/:id", h.Me.MarkNotificationRead)

	return r
}
