package routers

import (
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController, availabilityController *controllers.AvailabilityController) {
	router.Get("/", doctorController.FindDoctors)

	// "/me" is registered before "/{doctor_id}" so the literal segment wins.
	router.Route("/me", func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/", doctorController.GetOwnProfile)
		r.Patch("/", doctorController.UpdateOwnProfile)
		r.Put("/availability", availabilityController.ReplaceWeeklyAvailability)
		r.Put("/unavailability", availabilityController.UpsertUnavailability)
		r.Delete(fmt.Sprintf("/unavailability/{%s}", constvars.URLParamDate), availabilityController.RemoveUnavailability)
	})

	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamDoctorID), doctorController.GetDoctorByID)
}
