package routers

import (
	"carelink-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Get("/", availabilityController.FindAvailability)
}
