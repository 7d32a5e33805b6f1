package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap holds the long-lived connections shared by every usecase.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes every connection even when an earlier one fails, and returns the joined errors.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error

	if err := b.MongoDB.Client().Disconnect(ctx); err != nil {
		errs = append(errs, err)
	} else {
		b.Logger.Info("Successfully closing MongoDB")
	}

	if err := b.Redis.Close(); err != nil {
		errs = append(errs, err)
	} else {
		b.Logger.Info("Successfully closing Redis")
	}

	if err := b.RabbitMQ.Close(); err != nil && !errors.Is(err, amqp091.ErrClosed) {
		errs = append(errs, err)
	} else {
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	// Sync fails on stdout/stderr sinks, nothing to recover there.
	_ = b.Logger.Sync()

	return errors.Join(errs...)
}
