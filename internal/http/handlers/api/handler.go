// Package api contains the REST handlers for the marketplace surface.
package api

import (
	"strconv"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/provider"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services the REST layer depends on.
type Handler struct {
	userAuthService *service.UserAuthService
	vendorService   *service.VendorService
	categoryService *service.CategoryService
	productService  *service.ProductService
	orderService    *service.OrderService
	cartService     *service.CartService
	favoriteService *service.FavoriteService
	reviewService   *service.ReviewService
	messageService  *service.MessageService
	supplierService *service.SupplierService
	captchaService  *service.CaptchaService
}

// New builds the REST handler from the service container.
func New(c *provider.Container) *Handler {
	return NewHandler(
		c.UserAuthService,
		c.VendorService,
		c.CategoryService,
		c.ProductService,
		c.OrderService,
		c.CartService,
		c.FavoriteService,
		c.ReviewService,
		c.MessageService,
		c.SupplierService,
		c.CaptchaService,
	)
}

// NewHandler creates the REST handler.
func NewHandler(
	userAuthService *service.UserAuthService,
	vendorService *service.VendorService,
	categoryService *service.CategoryService,
	productService *service.ProductService,
	orderService *service.OrderService,
	cartService *service.CartService,
	favoriteService *service.FavoriteService,
	reviewService *service.ReviewService,
	messageService *service.MessageService,
	supplierService *service.SupplierService,
	captchaService *service.CaptchaService,
) *Handler {
	return &Handler{
		userAuthService: userAuthService,
		vendorService:   vendorService,
		categoryService: categoryService,
		productService:  productService,
		orderService:    orderService,
		cartService:     cartService,
		favoriteService: favoriteService,
		reviewService:   reviewService,
		messageService:  messageService,
		supplierService: supplierService,
		captchaService:  captchaService,
	}
}

// parseIDParam reads a positive integer path parameter. The bool result is
// false when the value is malformed; the 400 has already been written.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
