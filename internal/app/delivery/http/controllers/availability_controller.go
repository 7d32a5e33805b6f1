package controllers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *AvailabilityController) FindAvailability(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildFindAvailabilityRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.FindAvailability(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccess, result)
}

func (ctrl *AvailabilityController) ReplaceWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ReplaceWeeklyAvailability)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	doctor, err := ctrl.AvailabilityUsecase.ReplaceWeeklyAvailability(ctx, utils.GetDoctorID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReplaceAvailabilitySuccess, doctor)
}

func (ctrl *AvailabilityController) UpsertUnavailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertUnavailability)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	doctor, err := ctrl.AvailabilityUsecase.UpsertUnavailability(ctx, utils.GetDoctorID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertUnavailableSuccess, doctor)
}

func (ctrl *AvailabilityController) RemoveUnavailability(w http.ResponseWriter, r *http.Request) {
	request := &requests.RemoveUnavailability{Date: chi.URLParam(r, constvars.URLParamDate)}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	doctor, err := ctrl.AvailabilityUsecase.RemoveUnavailability(ctx, utils.GetDoctorID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveUnavailableSuccess, doctor)
}
