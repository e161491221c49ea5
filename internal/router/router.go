// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/config"
	"github.com/agriconnect/agriconnect-backend/internal/handlers"
	"github.com/agriconnect/agriconnect-backend/internal/middleware"
	"github.com/agriconnect/agriconnect-backend/internal/models"
	"github.com/agriconnect/agriconnect-backend/internal/services"
	"github.com/agriconnect/agriconnect-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db, catalogService, cfg.Marketplace.RestockOnReject)
	authService := services.NewAuthService(db, cfg)
	advisoryService := services.NewAdvisoryService(cfg.Weather)
	expertService := services.NewExpertService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryService)
	expertHandler := handlers.NewExpertHandler(expertService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product catalog routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			// Farmer-only routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.FarmerRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.GET("/mine", productHandler.GetMyProducts)
			}
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", middleware.RoleRequired(models.UserRoleVendor, models.UserRoleHelper), orderHandler.PlaceOrder)
			orders.GET("/mine", orderHandler.GetMyOrders)
			orders.GET("/incoming", middleware.FarmerRequired(), orderHandler.GetIncomingOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/confirm", middleware.FarmerRequired(), orderHandler.ConfirmOrder)
			orders.POST("/:id/deliver", middleware.FarmerRequired(), orderHandler.MarkDelivered)
			orders.POST("/:id/reject", middleware.FarmerRequired(), orderHandler.RejectOrder)
		}

		// Farmer dashboard
		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired())
		{
			dashboard.GET("/farmer", middleware.FarmerRequired(), orderHandler.GetFarmerDashboard)
		}

		// Crop advisory (public)
		v1.GET("/advisory", advisoryHandler.GetAdvisory)

		// Expert chat routes
		experts := v1.Group("/experts")
		{
			experts.GET("", expertHandler.GetExperts)
			experts.POST("/:id/sessions", middleware.AuthRequired(), expertHandler.StartSession)
		}

		chat := v1.Group("/chat")
		chat.Use(middleware.AuthRequired())
		{
			chat.POST("/sessions/:id/messages", middleware.ChatRateLimit(), expertHandler.SendMessage)
			chat.GET("/sessions/:id", expertHandler.GetSessionHistory)
		}
	}

	return r
}
