// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthAccessDenied       = "auth.access_denied"

	// Products
	KeyProductCreated    = "product.created"
	KeyProductDeleted    = "product.deleted"
	KeyProductNotFound   = "product.not_found"
	KeyProductOutOfStock = "product.out_of_stock"

	// Orders
	KeyOrderPlaced            = "order.placed"
	KeyOrderConfirmed         = "order.confirmed"
	KeyOrderDelivered         = "order.delivered"
	KeyOrderRejected          = "order.rejected"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderInvalidTransition = "order.invalid_transition"

	// Advisory
	KeyAdvisoryCityRequired = "advisory.city_required"
	KeyAdvisoryUnavailable  = "advisory.unavailable"

	// Expert chat
	KeyChatExpertNotFound  = "chat.expert_not_found"
	KeyChatSessionNotFound = "chat.session_not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
