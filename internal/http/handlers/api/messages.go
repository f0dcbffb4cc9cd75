package api

import (
	"errors"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createMessageRequest struct {
	VendorID    FlexUint `json:"vendorId" binding:"required"`
	SenderName  string   `json:"senderName" binding:"required"`
	SenderEmail string   `json:"senderEmail" binding:"required,email"`
	Subject     string   `json:"subject" binding:"required"`
	Message     string   `json:"message" binding:"required"`
	CaptchaID   string   `json:"captchaId"`
	CaptchaCode string   `json:"captchaCode"`
}

// ListVendorMessages handles GET /api/messages/vendor/:vendorId.
func (h *Handler) ListVendorMessages(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "vendorId")
	if !ok {
		return
	}

	messages, err := h.messageService.ListByVendor(vendorID)
	if err != nil {
		logger.Errorw("message_list_failed", "vendor_id", vendorID, "error", err)
		response.Internal(c, "Failed to fetch messages")
		return
	}
	response.OK(c, messages)
}

// CreateMessage handles POST /api/messages. When the image captcha is
// enabled the challenge answer must accompany the payload.
func (h *Handler) CreateMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid message data", bindingDetails(err))
		return
	}

	if err := h.captchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
		response.BadRequest(c, "Captcha verification failed")
		return
	}

	message, err := h.messageService.Create(service.CreateMessageInput{
		VendorID:    req.VendorID.Uint(),
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		logger.Errorw("message_create_failed", "error", err)
		response.Internal(c, "Failed to create message")
		return
	}
	response.Created(c, message)
}

// MarkMessageRead handles PUT /api/messages/:id/read.
func (h *Handler) MarkMessageRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	message, err := h.messageService.MarkRead(id)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		logger.Errorw("message_mark_read_failed", "message_id", id, "error", err)
		response.Internal(c, "Failed to mark message as read")
		return
	}
	response.OK(c, message)
}
