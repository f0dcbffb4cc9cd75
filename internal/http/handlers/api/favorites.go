package api

import (
	"errors"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type addFavoriteRequest struct {
	UserID    FlexUint `json:"userId" binding:"required"`
	ProductID FlexUint `json:"productId" binding:"required"`
}

// ListFavorites handles GET /api/favorites/:userId.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	favorites, err := h.favoriteService.ListByUser(userID)
	if err != nil {
		logger.Errorw("favorite_list_failed", "user_id", userID, "error", err)
		response.Internal(c, "Failed to fetch favorites")
		return
	}
	response.OK(c, favorites)
}

// AddFavorite handles POST /api/favorites. Bookmarking the same product
// twice returns the existing row.
func (h *Handler) AddFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid favorite data", bindingDetails(err))
		return
	}

	favorite, err := h.favoriteService.Add(req.UserID.Uint(), req.ProductID.Uint())
	if err != nil {
		logger.Errorw("favorite_add_failed", "error", err)
		response.Internal(c, "Failed to add to favorites")
		return
	}
	response.Created(c, favorite)
}

// RemoveFavorite handles DELETE /api/favorites/:userId/:productId.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(userID, productID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.NotFound(c, "Favorite not found")
			return
		}
		logger.Errorw("favorite_remove_failed", "user_id", userID, "product_id", productID, "error", err)
		response.Internal(c, "Failed to remove from favorites")
		return
	}
	response.Deleted(c)
}

// CheckFavorite handles GET /api/favorites/:userId/:productId/check.
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(userID, productID)
	if err != nil {
		logger.Errorw("favorite_check_failed", "user_id", userID, "product_id", productID, "error", err)
		response.Internal(c, "Failed to check favorite status")
		return
	}
	response.OK(c, gin.H{"isFavorite": isFavorite})
}
