package repository

import (
	"errors"

	"github.com/markethub-api/internal/models"

	"gorm.io/gorm"
)

// MessageRepository is the message data access interface.
type MessageRepository interface {
	ListByVendor(vendorID uint) ([]models.Message, error)
	GetByID(id uint) (*models.Message, error)
	Create(message *models.Message) error
	MarkRead(id uint) error
	WithTx(tx *gorm.DB) MessageRepository
}

// GormMessageRepository is the GORM implementation.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a message repository.
func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormMessageRepository) WithTx(tx *gorm.DB) MessageRepository {
	if tx == nil {
		return r
	}
	return &GormMessageRepository{db: tx}
}

// ListByVendor returns a vendor's inbox, newest first.
func (r *GormMessageRepository) ListByVendor(vendorID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetByID fetches a message by id.
func (r *GormMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Create inserts a message.
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// MarkRead flags a message as read.
func (r *GormMessageRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true).Error
}
