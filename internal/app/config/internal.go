package config

type InternalConfig struct {
	App App    `mapstructure:"app"`
	JWT AppJWT `mapstructure:"jwt"`
}

type App struct {
	Env                            string `mapstructure:"env"`
	Port                           string `mapstructure:"port"`
	Version                        string `mapstructure:"version"`
	EndpointPrefix                 string `mapstructure:"endpoint_prefix"`
	MaxRequests                    int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds       int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds      int    `mapstructure:"max_time_requests_per_seconds"`
	RequestTimeoutInSeconds        int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte     int    `mapstructure:"request_body_limit_in_megabyte"`
	LoginSessionExpiredTimeInHours int    `mapstructure:"login_session_expired_time_in_hours"`
	LoginMaxAttempts               int    `mapstructure:"login_max_attempts"`
	LoginAttemptWindowInSeconds    int    `mapstructure:"login_attempt_window_in_seconds"`
	SuperadminAPIKey               string `mapstructure:"superadmin_api_key"`
	SuperadminAPIKeyRateLimit      int    `mapstructure:"superadmin_api_key_rate_limit"`
	// AvailabilityMaxRangeInDays caps how many calendar days one availability query may span
	AvailabilityMaxRangeInDays     int    `mapstructure:"availability_max_range_in_days"`
	RabbitMQAvailabilityQueue      string `mapstructure:"rabbitmq_availability_queue"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}
