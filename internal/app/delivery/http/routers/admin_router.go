package routers

import (
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Post("/doctors", doctorController.CreateDoctor)
	router.Patch(fmt.Sprintf("/doctors/{%s}/verification", constvars.URLParamDoctorID), doctorController.SetDoctorVerification)
}
