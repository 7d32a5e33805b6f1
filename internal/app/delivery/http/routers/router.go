package routers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	availabilityController *controllers.AvailabilityController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/health", func(r chi.Router) {
				attachHealthRoutes(r, healthController)
			})

			r.Group(func(r chi.Router) {
				r.Use(normalLimiter)

				r.Route("/auth", func(r chi.Router) {
					attachAuthRoutes(r, internalConfig, middlewares, authController)
				})

				r.Route("/availability", func(r chi.Router) {
					attachAvailabilityRoutes(r, availabilityController)
				})

				r.Route("/doctors", func(r chi.Router) {
					attachDoctorRoutes(r, middlewares, doctorController, availabilityController)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.RequireSuperadminAPIKey)
				r.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))
				attachAdminRoutes(r, doctorController)
			})
		})
	})
}
