package api

import (
	"errors"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	UserID          FlexUint               `json:"userId" binding:"required"`
	VendorID        FlexUint               `json:"vendorId" binding:"required"`
	TotalAmount     *models.Money          `json:"totalAmount" binding:"required"`
	ShippingAddress string                 `json:"shippingAddress" binding:"required"`
	Items           []createOrderItemEntry `json:"items" binding:"dive"`
}

type createOrderItemEntry struct {
	ProductID FlexUint      `json:"productId" binding:"required"`
	Quantity  FlexInt       `json:"quantity" binding:"required"`
	Price     *models.Money `json:"price" binding:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ListUserOrders handles GET /api/orders/user/:userId.
func (h *Handler) ListUserOrders(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	orders, err := h.orderService.ListByUser(userID)
	if err != nil {
		logger.Errorw("order_list_by_user_failed", "user_id", userID, "error", err)
		response.Internal(c, "Failed to fetch orders")
		return
	}
	response.OK(c, orders)
}

// ListVendorOrders handles GET /api/orders/vendor/:vendorId.
func (h *Handler) ListVendorOrders(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "vendorId")
	if !ok {
		return
	}

	orders, err := h.orderService.ListByVendor(vendorID)
	if err != nil {
		logger.Errorw("order_list_by_vendor_failed", "vendor_id", vendorID, "error", err)
		response.Internal(c, "Failed to fetch vendor orders")
		return
	}
	response.OK(c, orders)
}

// CreateOrder handles POST /api/orders. The order and its nested items are
// written atomically; a failed item insert rolls the order back.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid order data", bindingDetails(err))
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, entry := range req.Items {
		items = append(items, service.CreateOrderItem{
			ProductID: entry.ProductID.Uint(),
			Quantity:  entry.Quantity.Int(),
			Price:     *entry.Price,
		})
	}

	order, err := h.orderService.Create(service.CreateOrderInput{
		UserID:          req.UserID.Uint(),
		VendorID:        req.VendorID.Uint(),
		TotalAmount:     *req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	})
	if err != nil {
		logger.Errorw("order_create_failed", "error", err)
		response.Internal(c, "Failed to create order")
		return
	}
	response.Created(c, order)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		response.BadRequest(c, "Status is required")
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			response.BadRequest(c, "Invalid order status")
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFound(c, "Order not found")
		default:
			logger.Errorw("order_status_update_failed", "order_id", id, "error", err)
			response.Internal(c, "Failed to update order status")
		}
		return
	}
	response.OK(c, order)
}
