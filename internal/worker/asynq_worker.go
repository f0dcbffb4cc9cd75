// Package worker consumes the async notification tasks.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/provider"
	"github.com/markethub-api/internal/queue"
	"github.com/markethub-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks against the shared container.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskContactMessage, c.handleContactMessage)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderID:     order.ID,
		Status:      status,
		TotalAmount: order.TotalAmount,
	}
	if err := c.EmailService.SendOrderStatusEmail(strings.TrimSpace(user.Email), input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_status_email_skip_smtp_unconfigured", "order_id", order.ID)
			return nil
		}
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"receiver_email", user.Email,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleContactMessage(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_contact_message_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ContactMessagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_contact_message_unmarshal_failed", "error", err)
		return err
	}
	if payload.MessageID == 0 {
		logger.Debugw("worker_contact_message_skip_invalid_payload", "message_id", payload.MessageID)
		return nil
	}
	message, err := c.MessageRepo.GetByID(payload.MessageID)
	if err != nil {
		logger.Warnw("worker_contact_message_fetch_failed", "message_id", payload.MessageID, "error", err)
		return err
	}
	if message == nil {
		logger.Debugw("worker_contact_message_skip_not_found", "message_id", payload.MessageID)
		return nil
	}
	vendor, err := c.VendorRepo.GetByID(message.VendorID)
	if err != nil {
		logger.Warnw("worker_contact_message_fetch_vendor_failed", "message_id", message.ID, "vendor_id", message.VendorID, "error", err)
		return err
	}
	if vendor == nil {
		logger.Debugw("worker_contact_message_skip_vendor_not_found", "message_id", message.ID, "vendor_id", message.VendorID)
		return nil
	}
	owner, err := c.UserRepo.GetByID(vendor.UserID)
	if err != nil {
		logger.Warnw("worker_contact_message_fetch_owner_failed", "message_id", message.ID, "user_id", vendor.UserID, "error", err)
		return err
	}
	if owner == nil || strings.TrimSpace(owner.Email) == "" {
		logger.Debugw("worker_contact_message_skip_empty_receiver", "message_id", message.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_contact_message_skip_email_service_nil", "message_id", message.ID)
		return nil
	}
	input := service.ContactNotificationInput{
		SenderName: message.SenderName,
		Subject:    message.Subject,
	}
	if err := c.EmailService.SendContactNotification(strings.TrimSpace(owner.Email), input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_contact_message_skip_smtp_unconfigured", "message_id", message.ID)
			return nil
		}
		logger.Warnw("worker_contact_message_send_failed",
			"message_id", message.ID,
			"receiver_email", owner.Email,
			"error", err,
		)
		return err
	}
	return nil
}
