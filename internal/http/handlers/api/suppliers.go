package api

import (
	"errors"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createSupplierRequest struct {
	VendorID FlexUint `json:"vendorId" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Contact  string   `json:"contact" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    *string  `json:"phone"`
	Address  *string  `json:"address"`
	Products *string  `json:"products"`
	Status   string   `json:"status"`
}

type updateSupplierRequest struct {
	Name     *string `json:"name"`
	Contact  *string `json:"contact"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Products *string `json:"products"`
	Status   *string `json:"status"`
}

// ListVendorSuppliers handles GET /api/suppliers/vendor/:vendorId.
func (h *Handler) ListVendorSuppliers(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "vendorId")
	if !ok {
		return
	}

	suppliers, err := h.supplierService.ListByVendor(vendorID)
	if err != nil {
		logger.Errorw("supplier_list_failed", "vendor_id", vendorID, "error", err)
		response.Internal(c, "Failed to fetch suppliers")
		return
	}
	response.OK(c, suppliers)
}

// CreateSupplier handles POST /api/suppliers.
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req createSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid supplier data", bindingDetails(err))
		return
	}

	supplier, err := h.supplierService.Create(service.CreateSupplierInput{
		VendorID: req.VendorID.Uint(),
		Name:     req.Name,
		Contact:  req.Contact,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Products: req.Products,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSupplierStatus) {
			response.BadRequest(c, "Invalid supplier data")
			return
		}
		logger.Errorw("supplier_create_failed", "error", err)
		response.Internal(c, "Failed to create supplier")
		return
	}
	response.Created(c, supplier)
}

// UpdateSupplier handles PUT /api/suppliers/:id with a partial body.
func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid supplier data", bindingDetails(err))
		return
	}

	supplier, err := h.supplierService.Update(id, service.UpdateSupplierInput{
		Name:     req.Name,
		Contact:  req.Contact,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Products: req.Products,
		Status:   req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupplierNotFound):
			response.NotFound(c, "Supplier not found")
		case errors.Is(err, service.ErrInvalidSupplierStatus):
			response.BadRequest(c, "Invalid supplier data")
		default:
			logger.Errorw("supplier_update_failed", "supplier_id", id, "error", err)
			response.Internal(c, "Failed to update supplier")
		}
		return
	}
	response.OK(c, supplier)
}

// DeleteSupplier handles DELETE /api/suppliers/:id.
func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.Delete(id); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.NotFound(c, "Supplier not found")
			return
		}
		logger.Errorw("supplier_delete_failed", "supplier_id", id, "error", err)
		response.Internal(c, "Failed to delete supplier")
		return
	}
	response.Deleted(c)
}
