package service

import (
	"strings"
	"time"

	"github.com/markethub-api/internal/config"
	"github.com/markethub-api/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge is a generated image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captchaId"`
	ImageBase64 string `json:"imageBase64"`
}

// CaptchaService guards the contact form with an optional image captcha.
// With the provider set to "none" every verification passes, which is the
// default for the demo dataset.
type CaptchaService struct {
	cfg        config.CaptchaConfig
	imageStore base64Captcha.Store
}

// NewCaptchaService creates a captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	maxStore := cfg.Image.MaxStore
	if maxStore <= 0 {
		maxStore = base64Captcha.GCLimitNumber
	}
	expire := time.Duration(cfg.Image.ExpireSeconds) * time.Second
	if expire <= 0 {
		expire = base64Captcha.Expiration
	}
	return &CaptchaService{
		cfg:        cfg,
		imageStore: base64Captcha.NewMemoryStore(maxStore, expire),
	}
}

// Enabled reports whether challenges are required.
func (s *CaptchaService) Enabled() bool {
	return strings.EqualFold(strings.TrimSpace(s.cfg.Provider), constants.CaptchaProviderImage)
}

// GenerateImageChallenge creates a new image challenge.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	width := s.cfg.Image.Width
	if width <= 0 {
		width = 240
	}
	height := s.cfg.Image.Height
	if height <= 0 {
		height = 80
	}
	length := s.cfg.Image.Length
	if length <= 0 {
		length = 5
	}

	driver := base64Captcha.NewDriverDigit(height, width, length, 0.7, s.cfg.Image.ShowLine)
	captcha := base64Captcha.NewCaptcha(driver, s.imageStore)
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{CaptchaID: id, ImageBase64: b64}, nil
}

// Verify checks a challenge answer. A disabled provider accepts everything.
func (s *CaptchaService) Verify(captchaID, answer string) error {
	if !s.Enabled() {
		return nil
	}
	if strings.TrimSpace(captchaID) == "" || strings.TrimSpace(answer) == "" {
		return ErrCaptchaInvalid
	}
	if !s.imageStore.Verify(captchaID, strings.TrimSpace(answer), true) {
		return ErrCaptchaInvalid
	}
	return nil
}
