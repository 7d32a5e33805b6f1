package controllers

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthController struct {
	Log           *zap.Logger
	HealthUsecase contracts.HealthUsecase
}

func NewHealthController(logger *zap.Logger, healthUsecase contracts.HealthUsecase) *HealthController {
	return &HealthController{
		Log:           logger,
		HealthUsecase: healthUsecase,
	}
}

// Check answers 503 while any dependency is down so load balancers stop routing here.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	result := ctrl.HealthUsecase.Check(r.Context())
	if !result.Ready {
		utils.BuildSuccessResponse(w, constvars.StatusServiceUnavailable, constvars.HealthCheckDegraded, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccess, result)
}
