package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wbonfim/DeliveryApp/configs"
	"github.com/wbonfim/DeliveryApp/pkg/logger"
	"github.com/wbonfim/DeliveryApp/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Initialize(cfg.Env)
	defer logger.Sync()

	if err := configs.Connect(cfg); err != nil {
		logger.Log.Fatal("database connection failed", zap.Error(err))
	}
	db := configs.DB()

	if err := configs.Migrate(db); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}
	if err := configs.SeedCategories(); err != nil {
		logger.Log.Fatal("category seed failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(); err != nil {
		logger.Log.Fatal("admin seed failed", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.Register(r, db, cfg)

	logger.Log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
