package routers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

// loginBlockTime is how long a client that exhausted its login bucket stays rejected.
const loginBlockTime = 5 * time.Minute

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	burst := internalConfig.App.LoginMaxAttempts * 2
	if burst <= 0 {
		burst = 10
	}
	loginLimiter := newLoginRateLimiter(burst, middlewares)

	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}

func newLoginRateLimiter(burst int, m *middlewares.Middlewares) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(burst, time.Minute, loginBlockTime, m.Log)
}
