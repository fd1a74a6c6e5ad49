package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization   = "Authorization"
	HeaderXRequestID      = "X-Request-ID"
	HeaderStripeSignature = "Stripe-Signature"
	HeaderMockSignature   = "X-Mock-Signature"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyAccountSID = "account_sid"
	ContextKeyUserRole   = "user_role"

	// Database table names
	TableAccounts   = "accounts"
	TablePlans      = "plans"
	TablePayments   = "payments"
	TableSettings   = "settings"
	TableInterviews = "interviews"

	// SettingsSingletonID is the primary key of the only settings row.
	SettingsSingletonID = 1

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
