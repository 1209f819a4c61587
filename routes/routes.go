package routes

import (
	"stock_insights_backend/config"
	"stock_insights_backend/controllers"
	"stock_insights_backend/metrics"
	"stock_insights_backend/middleware"
	"stock_insights_backend/services"
	"stock_insights_backend/services/ingest"
	"stock_insights_backend/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, engine *ingest.Engine, m *metrics.Metrics) {
	priceStore := store.NewGormPriceStore(db)
	indicatorService := services.NewIndicatorService(priceStore)
	loginLimiter := middleware.NewLoginRateLimiter()

	// Initialize controllers
	stockController := controllers.NewStockController(priceStore, engine, indicatorService)
	userController := controllers.NewUserController(db, cfg.JWTSecret, loginLimiter)

	// API v1 group
	api := router.Group("/api/v1")
	{
		api.GET("/health-check", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  true,
				"message": "Details Fetched Successfully",
			})
		})

		// Public user routes
		user := api.Group("/user")
		{
			user.POST("/register", userController.Register)
			user.GET("/login", userController.Login)
			user.POST("/login", middleware.LoginRateLimitMiddleware(loginLimiter), userController.Login)
		}

		// Authenticated routes
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		{
			authorized.POST("/user/logout", userController.Logout)
			authorized.GET("/user/info", userController.Info)

			stock := authorized.Group("/stock")
			{
				stock.GET("/:symbol/history", stockController.GetHistory)
				stock.GET("/:symbol/indicators", stockController.GetIndicators)
				stock.POST("/fetch", stockController.FetchStockData)
			}
		}
	}

	// Prometheus metrics
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
}
