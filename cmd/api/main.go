package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"udaan/internal/core/auth"
	"udaan/internal/core/cache"
	"udaan/internal/core/config"
	"udaan/internal/core/database"
	"udaan/internal/core/logger"
	"udaan/internal/core/server"
	"udaan/internal/domain"
	"udaan/internal/repo"
	"udaan/internal/service"
	"udaan/internal/transport/http/handler"
	"udaan/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 自动迁移：users/jobs/applications/notifications，
	// applications 上建 (student_id, job_id) 唯一索引
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Notification{},
			&domain.Job{},
			&domain.Application{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// Redis 缓存可选：连不上就降级直查库
	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := c.Ping(pingCtx); err != nil {
			log.Warn("redis unavailable, cache disabled", zap.Error(err))
			c = nil
		}
		pingCancel()
	}

	// JWT（默认 7 天有效期）
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLHour) * time.Hour,
	}

	// 仓储 → 服务 → 处理器
	userRepo := repo.NewUserRepo(db)
	jobRepo := repo.NewJobRepo(db)
	appRepo := repo.NewApplicationRepo(db)
	notifRepo := repo.NewNotificationRepo(db)

	userSvc := service.NewUserService(userRepo, notifRepo, appRepo, jobRepo, jwter, cfg.Placement.PageSize)
	jobSvc := service.NewJobService(jobRepo, c, cfg.Placement.PageSize, cfg.Placement.MaxPageSize)
	appSvc := service.NewApplicationService(appRepo, jobRepo, userRepo, notifRepo, cfg.Placement.InboxCap)

	r := router.NewAPIEngine(log, jwter, router.Handlers{
		Auth:         handler.NewAuthHandler(userSvc),
		Jobs:         handler.NewJobHandler(jobSvc),
		Applications: handler.NewApplicationHandler(appSvc),
		Me:           handler.NewMeHandler(userSvc),
	})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("udaan api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("udaan api start FAILED", zap.Error(err))
		}
	}()
	log.Info("udaan api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("udaan api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
