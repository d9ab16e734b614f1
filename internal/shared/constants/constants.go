package constants

// Database table names (kept singular to match the original schema).
const (
	TableServices      = "service"
	TablePlans         = "plan"
	TableSubscriptions = "subscription"
	TableBookmarks     = "bookmark"
	TableUsers         = "user"
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserAdmin = "is_admin"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// DefaultCurrency is used when a plan does not specify one.
const DefaultCurrency = "KRW"

// ComparisonLimit caps how many service IDs one comparison request may
// resolve.
const ComparisonLimit = 5
