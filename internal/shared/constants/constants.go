package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderServiceKey    = "X-Service-Key"

	// Rate limit response headers
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Plan database table names
	TablePlanTypes        = "plan_type"
	TablePlans            = "plan"
	TableSeatLimitConfigs = "plan_user_type"
	TablePriceOverrides   = "plan_user_override"
	TableSubscriptions    = "company_plan"
	TableSeatUsages       = "company_plan_usage"
	TableCancellations    = "plan_cancellations"
	TableHistory          = "company_plan_history"
	TablePlanReports      = "plan_reports"

	// Identity database table names
	TableUsers  = "user"
	TableEmails = "email"

	// EmailTypePrimary marks the address created together with the user.
	EmailTypePrimary = "primary"

	// Default values
	DefaultCurrency = "BRL"

	// History reads. A bare ?recent asks for the default count.
	DefaultRecentHistory = 10
	MaxRecentHistory     = 100

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgRateLimited         = "rate limit exceeded, please try again later"
)
