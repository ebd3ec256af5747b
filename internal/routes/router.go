package routes

import (
	"net/http"

	"restaurant-order-service/internal/config"
	"restaurant-order-service/internal/delivery/http/handler"
	"restaurant-order-service/internal/infrastructure/database/postgres"
	"restaurant-order-service/internal/logger"
	"restaurant-order-service/internal/middleware"
	"restaurant-order-service/internal/usecase/auth"
	"restaurant-order-service/internal/usecase/menu"
	"restaurant-order-service/internal/usecase/order"
	"restaurant-order-service/internal/usecase/report"
	"restaurant-order-service/pkg/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	issuer := token.NewIssuer(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL)
	authMW := middleware.AuthMiddleware(issuer)

	userRepository := postgres.NewUserRepository(db)
	categoryRepository := postgres.NewCategoryRepository(db)
	dishRepository := postgres.NewDishRepository(db)
	orderRepository := postgres.NewOrderRepository(db)
	reportRepository := postgres.NewReportRepository(db)

	authHandler := handler.NewAuthHandler(auth.NewService(userRepository, issuer))
	menuHandler := handler.NewMenuHandler(menu.NewService(categoryRepository, dishRepository))
	orderHandler := handler.NewOrderHandler(order.NewService(orderRepository, dishRepository, cfg.Orders.StrictStatus))
	reportHandler := handler.NewReportHandler(report.NewService(reportRepository))

	root := router.Group("")
	{
		authHandler.RegisterRoutes(root, authMW)
		menuHandler.RegisterRoutes(root, authMW)
		orderHandler.RegisterRoutes(root, authMW)
		reportHandler.RegisterRoutes(root)
	}

	logger.Info("All routes initialized")
	return router
}
