package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"dive":          "is invalid",
	"clock":         "must be a 24-hour time in HH:MM format",
	"calendar_date": "must be a date in YYYY-MM-DD format",
	"weekday":       "must be a weekday name, monday to sunday",
	"clock_order":   "endTime must be later than startTime",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Tags whose message is returned as-is without the field name prefix
var TagsWithStandaloneMessage = map[string]bool{
	"clock_order": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientInvalidDateRange              = "startDate and endDate must be valid YYYY-MM-DD dates and startDate must not be after endDate"
	ErrClientDateRangeTooLong              = "the requested date range is too long"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientTooManyRequests               = "too many requests, you are blocked temporarily"
	ErrClientAPIKeyRequired                = "API key is required"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevDoctorNotExists          = "doctor %s not exists in our system"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevInvalidDateRange         = "invalid date range %q..%q"
	ErrDevDateRangeTooLong         = "date range spans %d days, maximum allowed is %d"
	ErrDevLoginRateLimited         = "login attempts exceeded for email"
	ErrDevClientIPRateLimited      = "request rate exceeded for client ip %s"
	ErrDevResourceLimiterNilInput  = "resource limiter called with nil input"
	ErrDevInvalidAPIKey            = "INVALID_API_KEY"
	ErrDevAPIKeyRequired           = "API_KEY_REQUIRED"
	ErrDevServerProcess            = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerParseSessionData   = "failed to parse session data"
	ErrDevServerPanicRecovered     = "recovered from panic while serving request"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevQueryParamInvalid        = "query parameter %s is invalid"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on collection %s"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitMQ queue %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitMQ queue %s"
)

