package service

import (
	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/queue"
	"github.com/markethub-api/internal/repository"

	"gorm.io/gorm"
)

// OrderService handles order placement and tracking.
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// CreateOrderInput is the order placement payload.
type CreateOrderInput struct {
	UserID          uint
	VendorID        uint
	TotalAmount     models.Money
	ShippingAddress string
	Items           []CreateOrderItem
}

// CreateOrderItem is one requested line item.
type CreateOrderItem struct {
	ProductID uint
	Quantity  int
	Price     models.Money
}

// ListByUser returns a user's order history.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// ListByVendor returns a vendor's incoming orders.
func (s *OrderService) ListByVendor(vendorID uint) ([]models.Order, error) {
	return s.orderRepo.ListByVendor(vendorID)
}

// Create places an order. The order row and every line item are written in
// one transaction so a failed item insert rolls back the whole order.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	order := &models.Order{
		UserID:          input.UserID,
		VendorID:        input.VendorID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
	}

	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.orderRepo.WithTx(tx)
		if err := txRepo.Create(order); err != nil {
			return err
		}
		for _, item := range input.Items {
			orderItem := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := txRepo.CreateItem(orderItem); err != nil {
				return err
			}
			order.Items = append(order.Items, *orderItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"vendor_id", order.VendorID,
		"items", len(order.Items),
	)
	return order, nil
}

// UpdateStatus moves an order to a new state. Statuses outside the known
// set are rejected; no transition ordering is enforced between them.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  status,
	}); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", order.ID,
			"status", status,
			"error", err,
		)
	}

	return order, nil
}
