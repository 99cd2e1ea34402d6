package util

const (
	OptionCollection  = "appointmentOptions"
	BookingCollection = "bookings"
	UserCollection    = "users"
	DoctorCollection  = "doctors"

	AdminRole = "admin"

	// DefaultOptionPrice is the bulk price applied by /addPrice and the daily
	// reconciliation job to options that carry no price yet.
	DefaultOptionPrice = 99
)

const (
	UNAUTHORIZED_ACCESS    = "unauthorized access"
	FORBIDDEN_ACCESS       = "forbidden access"
	RECORD_NOT_FOUND       = "record not found"
	EMAIL_NOT_PROVIDED     = "email not provided"
	PASSWORD_NOT_PROVIDED  = "password not provided"
	MISSING_SIGNING_SECRET = "token signing secret is not configured"
)
