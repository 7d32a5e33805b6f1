package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingDoctorCountKey  = "doctor_count"
	LoggingDateKey         = "date"
	LoggingStartDateKey    = "start_date"
	LoggingEndDateKey      = "end_date"
	LoggingResultCountKey  = "result_count"
	LoggingRuleCountKey    = "rule_count"
	LoggingSlotCountKey    = "slot_count"
	LoggingEventTypeKey    = "event_type"
	LoggingQueueKey        = "queue"
	LoggingRedisKey        = "redis_key"
	LoggingEmailKey        = "email"
	LoggingRetryAfterKey   = "retry_after"
	LoggingVerifiedFlagKey = "is_verified"
	LoggingDoctorFilterKey = "doctor_filter"
	LoggingSessionIDKey    = "session_id"
)
