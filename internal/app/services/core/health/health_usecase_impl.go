package health

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/utils"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

type checkFunc func(ctx context.Context) error

type healthUsecase struct {
	checks         map[string]checkFunc
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewHealthUsecase(
	mongoDB *mongo.Database,
	redisRepository contracts.RedisRepository,
	rabbitMQConnection *amqp091.Connection,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.HealthUsecase {
	checks := map[string]checkFunc{
		constvars.HealthResourceMongoDB: func(ctx context.Context) error {
			return mongoDB.Client().Ping(ctx, nil)
		},
		constvars.HealthResourceRedis: redisRepository.Ping,
		constvars.HealthResourceRabbitMQ: func(ctx context.Context) error {
			if rabbitMQConnection == nil || rabbitMQConnection.IsClosed() {
				return errors.New("rabbitmq connection closed")
			}
			return nil
		},
	}
	return newHealthUsecase(checks, internalConfig, logger)
}

func newHealthUsecase(checks map[string]checkFunc, internalConfig *config.InternalConfig, logger *zap.Logger) *healthUsecase {
	return &healthUsecase{
		checks:         checks,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// Check runs every dependency probe concurrently, each bounded by its own timeout.
func (uc *healthUsecase) Check(ctx context.Context) *responses.HealthCheck {
	requestID := utils.GetRequestID(ctx)

	names := make([]string, 0, len(uc.checks))
	for name := range uc.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	statuses := make([]string, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
			defer cancel()

			statuses[i] = constvars.HealthStatusUp
			if err := uc.checks[name](checkCtx); err != nil {
				statuses[i] = constvars.HealthStatusDown
				uc.Log.Warn("healthUsecase.Check dependency unavailable",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String("resource", name),
					zap.Error(err),
				)
			}
		}(i, name)
	}
	wg.Wait()

	result := &responses.HealthCheck{
		Status:    constvars.HealthStatusHealthy,
		Version:   uc.InternalConfig.App.Version,
		Ready:     true,
		Resources: make(map[string]string, len(names)),
	}
	for i, name := range names {
		result.Resources[name] = statuses[i]
		if statuses[i] != constvars.HealthStatusUp {
			result.Status = constvars.HealthStatusDegraded
			result.Ready = false
		}
	}
	return result
}
