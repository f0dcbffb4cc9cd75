package service

import "errors"

// Sentinel errors returned by services and matched with errors.Is in the
// HTTP layer.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrUsernameTaken         = errors.New("username already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMissingCredentials    = errors.New("email and password required")
	ErrVendorNotFound        = errors.New("vendor not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrSlugTaken             = errors.New("category slug already used")
	ErrProductNotFound       = errors.New("product not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrInvalidSupplierStatus = errors.New("invalid supplier status")
	ErrCaptchaInvalid        = errors.New("captcha verification failed")
)
