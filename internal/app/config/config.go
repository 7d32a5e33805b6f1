package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

var defaults = map[string]interface{}{
	"mongodb.host":                            "localhost",
	"mongodb.port":                            "27017",
	"mongodb.username":                        "",
	"mongodb.password":                        "",
	"mongodb.db_name":                         "carelink",
	"redis.host":                              "localhost",
	"redis.port":                              "6379",
	"redis.password":                          "",
	"redis.db":                                0,
	"rabbitmq.host":                           "localhost",
	"rabbitmq.port":                           "5672",
	"rabbitmq.username":                       "guest",
	"rabbitmq.password":                       "guest",
	"logger.level":                            "debug",
	"logger.output_file_name":                 "logger.log",
	"logger.output_error_file_name":           "logger_error.log",
	"app.env":                                 "development",
	"app.port":                                "8080",
	"app.version":                             "v1",
	"app.endpoint_prefix":                     "api",
	"app.max_requests":                        100,
	"app.shutdown_timeout_in_seconds":         10,
	"app.max_time_requests_per_seconds":       60,
	"app.request_timeout_in_seconds":          10,
	"app.request_body_limit_in_megabyte":      2,
	"app.login_session_expired_time_in_hours": 24,
	"app.login_max_attempts":                  5,
	"app.login_attempt_window_in_seconds":     900,
	"app.superadmin_api_key":                  "",
	"app.superadmin_api_key_rate_limit":       60,
	"app.availability_max_range_in_days":      92,
	"app.rabbitmq_availability_queue":         "doctor_availability_events",
	"jwt.secret":                              "",
}

// newViper maps nested keys onto env names, e.g. app.port reads APP_PORT.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewDriverConfig() (*DriverConfig, error) {
	driverConfig := new(DriverConfig)
	if err := newViper().Unmarshal(driverConfig); err != nil {
		return nil, err
	}
	return driverConfig, nil
}

func NewInternalConfig() (*InternalConfig, error) {
	internalConfig := new(InternalConfig)
	if err := newViper().Unmarshal(internalConfig); err != nil {
		return nil, err
	}
	return internalConfig, nil
}
