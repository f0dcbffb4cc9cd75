package service

import (
	"strings"

	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/queue"
	"github.com/markethub-api/internal/repository"
)

// MessageService handles the vendor contact inbox.
type MessageService struct {
	messageRepo repository.MessageRepository
	queueClient *queue.Client
}

// NewMessageService creates a message service.
func NewMessageService(messageRepo repository.MessageRepository, queueClient *queue.Client) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		queueClient: queueClient,
	}
}

// CreateMessageInput is the contact-form payload.
type CreateMessageInput struct {
	VendorID    uint
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// ListByVendor returns a vendor's inbox.
func (s *MessageService) ListByVendor(vendorID uint) ([]models.Message, error) {
	return s.messageRepo.ListByVendor(vendorID)
}

// Create stores a contact message and queues a vendor notification.
func (s *MessageService) Create(input CreateMessageInput) (*models.Message, error) {
	message := &models.Message{
		VendorID:    input.VendorID,
		SenderName:  strings.TrimSpace(input.SenderName),
		SenderEmail: strings.TrimSpace(input.SenderEmail),
		Subject:     strings.TrimSpace(input.Subject),
		Message:     input.Message,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueContactMessage(queue.ContactMessagePayload{
		MessageID: message.ID,
		VendorID:  message.VendorID,
	}); err != nil {
		logger.Warnw("contact_message_enqueue_failed",
			"message_id", message.ID,
			"vendor_id", message.VendorID,
			"error", err,
		)
	}

	return message, nil
}

// MarkRead flags a message as read and returns the updated record.
func (s *MessageService) MarkRead(id uint) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	if err := s.messageRepo.MarkRead(id); err != nil {
		return nil, err
	}
	message.IsRead = true
	return message, nil
}
