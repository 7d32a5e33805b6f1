package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	internalConfig, err := NewInternalConfig()
	require.NoError(t, err)

	assert.Equal(t, 92, internalConfig.App.AvailabilityMaxRangeInDays)
	assert.Equal(t, "doctor_availability_events", internalConfig.App.RabbitMQAvailabilityQueue)
	assert.Equal(t, 24, internalConfig.App.LoginSessionExpiredTimeInHours)
}

func TestNewInternalConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_AVAILABILITY_MAX_RANGE_IN_DAYS", "31")
	t.Setenv("APP_RABBITMQ_AVAILABILITY_QUEUE", "availability_test")
	t.Setenv("JWT_SECRET", "from-env")

	internalConfig, err := NewInternalConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", internalConfig.App.Port)
	assert.Equal(t, 31, internalConfig.App.AvailabilityMaxRangeInDays)
	assert.Equal(t, "availability_test", internalConfig.App.RabbitMQAvailabilityQueue)
	assert.Equal(t, "from-env", internalConfig.JWT.Secret)
}

func TestNewDriverConfig_FromEnv(t *testing.T) {
	t.Setenv("MONGODB_HOST", "mongo.internal")
	t.Setenv("MONGODB_DB_NAME", "carelink_test")
	t.Setenv("REDIS_DB", "3")

	driverConfig, err := NewDriverConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongo.internal", driverConfig.MongoDB.Host)
	assert.Equal(t, "carelink_test", driverConfig.MongoDB.DbName)
	assert.Equal(t, 3, driverConfig.Redis.DB)
	assert.Equal(t, "5672", driverConfig.RabbitMQ.Port)
}
