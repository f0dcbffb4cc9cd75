package queue

import (
	"encoding/json"

	"github.com/markethub-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail notifies a buyer their order changed status.
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskContactMessage notifies a vendor of a new inbox message.
	TaskContactMessage = constants.TaskContactMessage
)

// OrderStatusEmailPayload is the order status notification payload.
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// ContactMessagePayload is the vendor inbox notification payload.
type ContactMessagePayload struct {
	MessageID uint `json:"message_id"`
	VendorID  uint `json:"vendor_id"`
}

// NewOrderStatusEmailTask creates an order status notification task.
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewContactMessageTask creates a vendor inbox notification task.
func NewContactMessageTask(payload ContactMessagePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactMessage, body), nil
}
