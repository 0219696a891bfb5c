package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderXRequestID    = "X-Request-ID"
	ContextKeyRequestID = "request_id"

	// APIPrefix is the mount point of every JSON endpoint.
	APIPrefix = "/api"

	// RootBanner is served on GET / as a liveness check.
	RootBanner = "Trip Booking Call Center API is running"

	// RecentBookingsLimit caps the unfiltered booking listing.
	RecentBookingsLimit = 50

	// CustomerSearchLimit caps customer search results.
	CustomerSearchLimit = 10
)
