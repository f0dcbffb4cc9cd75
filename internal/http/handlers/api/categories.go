package api

import (
	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		logger.Errorw("category_list_failed", "error", err)
		response.Internal(c, "Failed to fetch categories")
		return
	}
	response.OK(c, categories)
}
