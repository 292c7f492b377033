package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/cache"
	"github.com/nutrilog/internal/config"
	"github.com/nutrilog/internal/db"
	"github.com/nutrilog/internal/handler"
	"github.com/nutrilog/internal/logger"
	"github.com/nutrilog/internal/metrics"
	"github.com/nutrilog/internal/router"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	// 初始化日志与指标
	logger.Init(cfg.LogPath)
	defer logger.L.Sync()
	metrics.Init()

	logger.L.Info("starting_application")

	// 初始化数据库并补齐内置食物库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.L.Fatal("database_init_failed", zap.Error(err))
	}
	if err := db.SeedFoods(db.DB); err != nil {
		logger.L.Fatal("food_seed_failed", zap.Error(err))
	}

	// Redis 为可选依赖，未配置地址时按禁用处理
	catalogCache, err := cache.New(cfg.RedisAddr)
	if err != nil {
		logger.L.Fatal("redis_init_failed", zap.Error(err))
	}
	defer catalogCache.Close()

	gin.SetMode(cfg.GinMode)
	api := handler.NewAPI(db.DB, catalogCache)
	r := router.SetupRouter(api, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		logger.L.Info("server_listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L.Fatal("server_failed", zap.Error(err))
		}
	}()

	// 等待退出信号后优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L.Info("shutting_down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L.Error("shutdown_failed", zap.Error(err))
	}
}
