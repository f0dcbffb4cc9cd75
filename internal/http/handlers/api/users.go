package api

import (
	"errors"
	"time"

	"github.com/markethub-api/internal/http/response"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	IsVendor  bool   `json:"isVendor"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	models.User
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register handles POST /api/users/register. The created account is
// returned without its password field.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestWithDetails(c, "Invalid user data", bindingDetails(err))
		return
	}

	user, err := h.userAuthService.Register(service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsVendor:  req.IsVendor,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, "User with this email already exists")
		case errors.Is(err, service.ErrUsernameTaken):
			response.BadRequest(c, "User with this username already exists")
		default:
			logger.Errorw("user_register_failed", "error", err)
			response.Internal(c, "Failed to create user")
		}
		return
	}
	response.Created(c, user.Sanitized())
}

// Login handles POST /api/users/login. The reply never reveals whether the
// email or the password was wrong.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.userAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			response.BadRequest(c, "Email and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid credentials")
		default:
			logger.Errorw("user_login_failed", "error", err)
			response.Internal(c, "Failed to login")
		}
		return
	}

	response.OK(c, loginResponse{
		User:      result.User.Sanitized(),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}
