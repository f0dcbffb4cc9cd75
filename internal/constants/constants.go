package constants

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
)

// Allowed order status transitions sent by clients
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusCompleted,
}

// IsValidOrderStatus reports whether status is one of the known order states.
func IsValidOrderStatus(status string) bool {
	for _, candidate := range OrderStatuses {
		if candidate == status {
			return true
		}
	}
	return false
}

// Supplier status constants
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// IsValidSupplierStatus reports whether status is a known supplier state.
func IsValidSupplierStatus(status string) bool {
	return status == SupplierStatusActive || status == SupplierStatusInactive
}

// Homepage section limits
const (
	FeaturedProductLimit = 8
	FeaturedVendorLimit  = 6
)

// Queue constants
const (
	QueueDefault         = "default"
	TaskOrderStatusEmail = "order:status_email"
	TaskContactMessage   = "message:notify"
)

// Cache defaults
const (
	RedisPrefixDefault = "mh"
)

// Captcha provider constants
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)
