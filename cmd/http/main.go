package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/delivery/http/routers"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/app/drivers/messaging"
	"carelink-service/internal/app/services/core/auth"
	"carelink-service/internal/app/services/core/availability"
	"carelink-service/internal/app/services/core/doctors"
	"carelink-service/internal/app/services/core/health"
	"carelink-service/internal/app/services/core/session"
	"carelink-service/internal/app/services/shared/events"
	"carelink-service/internal/app/services/shared/ratelimiter"
	"carelink-service/internal/app/services/shared/redis"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	// Every calendar date in the service is a UTC midnight.
	time.Local = time.UTC

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting carelink service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, internalConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	availabilityPublisher, err := events.NewAvailabilityPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQAvailabilityQueue,
	)
	if err != nil {
		return err
	}

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		doctorMongoRepository,
		availabilityPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase, bootstrap.InternalConfig)

	// Auth
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(doctorMongoRepository, sessionService, resourceLimiter, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Health
	healthUsecase := health.NewHealthUsecase(bootstrap.MongoDB, redisRepository, bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	healthController := controllers.NewHealthController(bootstrap.Logger, healthUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		availabilityController,
		healthController,
	)
	return nil
}
