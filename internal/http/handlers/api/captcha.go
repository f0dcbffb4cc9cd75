package api

import (
	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// GetCaptchaImage handles GET /api/captcha/image.
func (h *Handler) GetCaptchaImage(c *gin.Context) {
	if !h.captchaService.Enabled() {
		response.OK(c, gin.H{"enabled": false})
		return
	}

	challenge, err := h.captchaService.GenerateImageChallenge()
	if err != nil {
		logger.Errorw("captcha_generate_failed", "error", err)
		response.Internal(c, "Failed to generate captcha")
		return
	}
	response.OK(c, gin.H{
		"enabled":     true,
		"captchaId":   challenge.CaptchaID,
		"imageBase64": challenge.ImageBase64,
	})
}
