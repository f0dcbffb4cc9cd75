package api

import (
	"errors"
	"strings"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createVendorRequest struct {
	UserID           FlexUint `json:"userId" binding:"required"`
	StoreName        string   `json:"storeName" binding:"required"`
	StoreDescription *string  `json:"storeDescription"`
}

// ListVendors handles GET /api/vendors with the optional featured filter.
func (h *Handler) ListVendors(c *gin.Context) {
	featured := strings.EqualFold(c.Query("featured"), "true")
	vendors, err := h.vendorService.List(featured)
	if err != nil {
		logger.Errorw("vendor_list_failed", "error", err)
		response.Internal(c, "Failed to fetch vendors")
		return
	}
	response.OK(c, vendors)
}

// GetVendor handles GET /api/vendors/:id.
func (h *Handler) GetVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.NotFound(c, "Vendor not found")
			return
		}
		logger.Errorw("vendor_get_failed", "vendor_id", id, "error", err)
		response.Internal(c, "Failed to fetch vendor")
		return
	}
	response.OK(c, vendor)
}

// GetVendorByUser handles GET /api/vendors/by-user/:userId.
func (h *Handler) GetVendorByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.NotFound(c, "Vendor not found for this user")
			return
		}
		logger.Errorw("vendor_get_by_user_failed", "user_id", userID, "error", err)
		response.Internal(c, "Failed to fetch vendor")
		return
	}
	response.OK(c, vendor)
}

// CreateVendor handles POST /api/vendors.
func (h *Handler) CreateVendor(c *gin.Context) {
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid vendor data", bindingDetails(err))
		return
	}

	vendor, err := h.vendorService.Create(service.CreateVendorInput{
		UserID:           req.UserID.Uint(),
		StoreName:        req.StoreName,
		StoreDescription: req.StoreDescription,
	})
	if err != nil {
		logger.Errorw("vendor_create_failed", "error", err)
		response.Internal(c, "Failed to create vendor")
		return
	}
	response.Created(c, vendor)
}
