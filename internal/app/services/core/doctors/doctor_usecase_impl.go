package doctors

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) GetDoctorProfile(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctorProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertDoctorToResponse(doctor, false)
	return &response, nil
}

func (uc *doctorUsecase) GetOwnProfile(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	response := utils.ConvertDoctorToResponse(doctor, true)
	return &response, nil
}

func (uc *doctorUsecase) UpdateOwnProfile(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	utils.SanitizeUpdateDoctorProfileRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		doctor.Name = *request.Name
	}
	if request.Specialization != nil {
		doctor.Specialization = *request.Specialization
	}
	if request.Gender != nil {
		doctor.Gender = *request.Gender
	}
	if request.Languages != nil {
		doctor.Languages = request.Languages
	}
	if request.Price != nil {
		doctor.Price = *request.Price
	}

	saved, err := uc.DoctorRepository.SaveDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateOwnProfile error saving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if saved == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	response := utils.ConvertDoctorToResponse(saved, true)
	return &response, nil
}

func (uc *doctorUsecase) FindDoctors(ctx context.Context, filter models.DoctorFilter) ([]responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.FindDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingDoctorFilterKey, filter),
	)

	doctors, err := uc.DoctorRepository.FindDoctors(ctx, filter)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.FindDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return utils.ConvertDoctorsToResponse(doctors), nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	utils.SanitizeCreateDoctorRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	doctor := &models.Doctor{
		Name:           request.Name,
		Email:          request.Email,
		Password:       hashedPassword,
		Specialization: request.Specialization,
		Gender:         request.Gender,
		Languages:      request.Languages,
		Price:          request.Price,
		Rating:         request.Rating,
		IsVerified:     request.IsVerified,
	}
	if doctor.Languages == nil {
		doctor.Languages = []string{}
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_created", requestID,
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	response := utils.ConvertDoctorToResponse(doctor, true)
	return &response, nil
}

func (uc *doctorUsecase) SetDoctorVerification(ctx context.Context, doctorID string, request *requests.UpdateDoctorVerification) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.SetDoctorVerification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorRepository.SetVerified(ctx, doctorID, *request.IsVerified)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	utils.LogBusinessEvent(uc.Log, "doctor_verification_updated", requestID,
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Bool(constvars.LoggingVerifiedFlagKey, doctor.IsVerified),
	)

	response := utils.ConvertDoctorToResponse(doctor, true)
	return &response, nil
}

func (uc *doctorUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	return doctor, nil
}
