package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	VendorID      FlexUint      `json:"vendorId" binding:"required"`
	CategoryID    FlexUint      `json:"categoryId" binding:"required"`
	Name          string        `json:"name" binding:"required"`
	Description   *string       `json:"description"`
	Price         *models.Money `json:"price" binding:"required"`
	OriginalPrice *models.Money `json:"originalPrice"`
	Stock         FlexInt       `json:"stock"`
	ImageURL      *string       `json:"imageUrl"`
	IsActive      *bool         `json:"isActive"`
}

type updateProductRequest struct {
	VendorID      *FlexUint     `json:"vendorId"`
	CategoryID    *FlexUint     `json:"categoryId"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Price         *models.Money `json:"price"`
	OriginalPrice *models.Money `json:"originalPrice"`
	Stock         *FlexInt      `json:"stock"`
	ImageURL      *string       `json:"imageUrl"`
	IsActive      *bool         `json:"isActive"`
}

// ListProducts handles GET /api/products with the optional category, vendor,
// search and featured query filters.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{OnlyActive: true}

	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if raw := strings.TrimSpace(c.Query("vendor")); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.VendorID = uint(id)
		}
	}
	filter.Search = strings.TrimSpace(c.Query("search"))
	filter.Featured = strings.EqualFold(c.Query("featured"), "true")

	products, err := h.productService.List(filter)
	if err != nil {
		logger.Errorw("product_list_failed", "error", err)
		response.Internal(c, "Failed to fetch products")
		return
	}
	response.OK(c, products)
}

// GetProduct handles GET /api/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_get_failed", "product_id", id, "error", err)
		response.Internal(c, "Failed to fetch product")
		return
	}
	response.OK(c, product)
}

// CreateProduct handles POST /api/products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid product data", bindingDetails(err))
		return
	}

	product, err := h.productService.Create(service.CreateProductInput{
		VendorID:      req.VendorID.Uint(),
		CategoryID:    req.CategoryID.Uint(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         *req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         req.Stock.Int(),
		ImageURL:      req.ImageURL,
		IsActive:      req.IsActive,
	})
	if err != nil {
		logger.Errorw("product_create_failed", "error", err)
		response.Internal(c, "Failed to create product")
		return
	}
	response.Created(c, product)
}

// UpdateProduct handles PUT /api/products/:id with a partial body.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid product data", bindingDetails(err))
		return
	}

	input := service.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		IsActive:      req.IsActive,
	}
	if req.VendorID != nil {
		vendorID := req.VendorID.Uint()
		input.VendorID = &vendorID
	}
	if req.CategoryID != nil {
		categoryID := req.CategoryID.Uint()
		input.CategoryID = &categoryID
	}
	if req.Stock != nil {
		stock := req.Stock.Int()
		input.Stock = &stock
	}

	product, err := h.productService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_update_failed", "product_id", id, "error", err)
		response.Internal(c, "Failed to update product")
		return
	}
	response.OK(c, product)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_delete_failed", "product_id", id, "error", err)
		response.Internal(c, "Failed to delete product")
		return
	}
	response.Deleted(c)
}
