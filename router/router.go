package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-admin/config"
	"github.com/yeremiapane/restaurant-admin/controllers"
	"github.com/yeremiapane/restaurant-admin/middlewares"
	"github.com/yeremiapane/restaurant-admin/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply middlewares
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORS.AllowedOrigins))
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter := middlewares.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
		r.Use(limiter.RateLimit())
	}

	// Inisialisasi service & controller
	menuSvc := services.NewMenuService(db)
	orderSvc := services.NewOrderService(db, services.NewOrderLifecycle(cfg.Orders.StrictTransitions))
	analyticsSvc := services.NewAnalyticsService(db)

	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// MENU
	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.GetMenuItems)
		menu.GET("/search", menuCtrl.SearchMenuItems)
		menu.GET("/categories", menuCtrl.GetCategories)
		menu.GET("/:id", menuCtrl.GetMenuItemByID)
		menu.POST("", menuCtrl.CreateMenuItem)
		menu.PUT("/:id", menuCtrl.UpdateMenuItem)
		menu.DELETE("/:id", menuCtrl.DeleteMenuItem)
		menu.PATCH("/:id/availability", menuCtrl.ToggleAvailability)
	}

	// ORDERS
	orders := api.Group("/orders")
	{
		orders.GET("", orderCtrl.GetOrders)
		orders.POST("", orderCtrl.CreateOrder)

		// ANALYTICS
		orders.GET("/analytics/top-sellers", analyticsCtrl.GetTopSellers)
		orders.GET("/analytics/revenue", analyticsCtrl.GetRevenue)
		orders.GET("/analytics/dashboard", analyticsCtrl.GetDashboardStats)

		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.PATCH("/:id/status", orderCtrl.UpdateOrderStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "route not found"})
	})

	return r
}
