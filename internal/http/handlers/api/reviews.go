package api

import (
	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"

	"github.com/gin-gonic/gin"
)

type createReviewRequest struct {
	UserID    FlexUint `json:"userId" binding:"required"`
	ProductID FlexUint `json:"productId" binding:"required"`
	Rating    FlexInt  `json:"rating" binding:"required"`
	Comment   *string  `json:"comment"`
}

// ListProductReviews handles GET /api/reviews/product/:productId.
func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByProduct(productID)
	if err != nil {
		logger.Errorw("review_list_failed", "product_id", productID, "error", err)
		response.Internal(c, "Failed to fetch reviews")
		return
	}
	response.OK(c, reviews)
}

// CreateReview handles POST /api/reviews.
func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid review data", bindingDetails(err))
		return
	}

	review, err := h.reviewService.Create(req.UserID.Uint(), req.ProductID.Uint(), req.Rating.Int(), req.Comment)
	if err != nil {
		logger.Errorw("review_create_failed", "error", err)
		response.Internal(c, "Failed to create review")
		return
	}
	response.Created(c, review)
}
