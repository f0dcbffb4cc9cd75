// Package router builds the gin engine and the REST route table.
package router

import (
	"fmt"
	"strings"

	"github.com/markethub-api/internal/cache"
	"github.com/markethub-api/internal/config"
	"github.com/markethub-api/internal/constants"
	apihandlers "github.com/markethub-api/internal/http/handlers/api"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes the routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "Too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Accounts
		api.POST("/users/register", handler.Register)
		api.POST("/users/login",
			RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")),
			handler.Login,
		)

		// Catalog
		api.GET("/categories", handler.ListCategories)
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.POST("/products", handler.CreateProduct)
		api.PUT("/products/:id", handler.UpdateProduct)
		api.DELETE("/products/:id", handler.DeleteProduct)

		// Vendors
		api.GET("/vendors", handler.ListVendors)
		api.GET("/vendors/by-user/:userId", handler.GetVendorByUser)
		api.GET("/vendors/:id", handler.GetVendor)
		api.POST("/vendors", handler.CreateVendor)

		// Cart
		api.GET("/cart/:userId", handler.GetCart)
		api.POST("/cart", handler.AddToCart)
		api.PUT("/cart/:id", handler.UpdateCartItem)
		api.DELETE("/cart/:id", handler.RemoveCartItem)

		// Orders
		api.GET("/orders/user/:userId", handler.ListUserOrders)
		api.GET("/orders/vendor/:vendorId", handler.ListVendorOrders)
		api.POST("/orders", handler.CreateOrder)
		api.PUT("/orders/:id/status", handler.UpdateOrderStatus)

		// Reviews
		api.GET("/reviews/product/:productId", handler.ListProductReviews)
		api.POST("/reviews", handler.CreateReview)

		// Favorites
		api.GET("/favorites/:userId", handler.ListFavorites)
		api.GET("/favorites/:userId/:productId/check", handler.CheckFavorite)
		api.POST("/favorites", handler.AddFavorite)
		api.DELETE("/favorites/:userId/:productId", handler.RemoveFavorite)

		// Vendor inbox
		api.GET("/messages/vendor/:vendorId", handler.ListVendorMessages)
		api.POST("/messages", handler.CreateMessage)
		api.PUT("/messages/:id/read", handler.MarkMessageRead)

		// Suppliers
		api.GET("/suppliers/vendor/:vendorId", handler.ListVendorSuppliers)
		api.POST("/suppliers", handler.CreateSupplier)
		api.PUT("/suppliers/:id", handler.UpdateSupplier)
		api.DELETE("/suppliers/:id", handler.DeleteSupplier)

		// Captcha
		api.GET("/captcha/image", handler.GetCaptchaImage)
	}

	return r
}
