package api

import (
	"errors"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	UserID    FlexUint `json:"userId" binding:"required"`
	ProductID FlexUint `json:"productId" binding:"required"`
	Quantity  FlexInt  `json:"quantity" binding:"required"`
}

type updateCartItemRequest struct {
	Quantity *FlexInt `json:"quantity"`
}

// GetCart handles GET /api/cart/:userId.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	items, err := h.cartService.ListByUser(userID)
	if err != nil {
		logger.Errorw("cart_list_failed", "user_id", userID, "error", err)
		response.Internal(c, "Failed to fetch cart items")
		return
	}
	response.OK(c, items)
}

// AddToCart handles POST /api/cart. Re-adding a product already in the cart
// increments its quantity.
func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid cart item data", bindingDetails(err))
		return
	}

	item, err := h.cartService.Add(req.UserID.Uint(), req.ProductID.Uint(), req.Quantity.Int())
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			response.BadRequest(c, "Valid quantity is required")
			return
		}
		logger.Errorw("cart_add_failed", "error", err)
		response.Internal(c, "Failed to add to cart")
		return
	}
	response.Created(c, item)
}

// UpdateCartItem handles PUT /api/cart/:id.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.BadRequest(c, "Valid quantity is required")
		return
	}

	item, err := h.cartService.UpdateQuantity(id, req.Quantity.Int())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			response.BadRequest(c, "Valid quantity is required")
		case errors.Is(err, service.ErrCartItemNotFound):
			response.NotFound(c, "Cart item not found")
		default:
			logger.Errorw("cart_update_failed", "cart_item_id", id, "error", err)
			response.Internal(c, "Failed to update cart item")
		}
		return
	}
	response.OK(c, item)
}

// RemoveCartItem handles DELETE /api/cart/:id.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.Remove(id); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			response.NotFound(c, "Cart item not found")
			return
		}
		logger.Errorw("cart_remove_failed", "cart_item_id", id, "error", err)
		response.Internal(c, "Failed to remove cart item")
		return
	}
	response.Deleted(c)
}
