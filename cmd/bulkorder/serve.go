package main

import (
	"fmt"
	"net/http"

	"bulk-order-service/internal/api/handlers"
	"bulk-order-service/internal/api/middleware"
	"bulk-order-service/internal/api/responses"
	"bulk-order-service/internal/config"
	"bulk-order-service/internal/core/bulkorder"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "bulk-order-service"

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync()

			router := newRouter(cfg, logger)

			logger.Info("bulk order service listening", zap.String("port", cfg.Server.Port))
			if err := router.Run(":" + cfg.Server.Port); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}

func newRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	responses.InitLogger(logger)

	bulkOrderService := bulkorder.NewService(logger, serviceOptions(cfg))
	bulkOrderHandler := handlers.NewBulkOrderHandler(bulkOrderService)

	router := gin.Default()
	router.Use(middleware.RequestID())

	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.BodyLimit(cfg.MaxUploadBytes()))
	{
		apiV1.POST("/bulk-order", bulkOrderHandler.HandleBuildBulkOrder)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": serviceName})
	})

	return router
}
