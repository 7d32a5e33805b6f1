package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_DOCTOR_ID_KEY            ContextKey = "doctor_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "CRLNK_SVC_"
)

const (
	SessionKeyPrefix = "session:"

	LimiterKeyPrefix  = "LIMIT"
	LimiterGroupLogin = "login"
)

const (
	DateLayout = "2006-01-02"
)

const (
	MongoCollectionDoctors = "doctors"
)

const (
	HealthResourceMongoDB  = "mongodb"
	HealthResourceRedis    = "redis"
	HealthResourceRabbitMQ = "rabbitmq"
)
