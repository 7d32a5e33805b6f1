package availability

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	DoctorRepository contracts.DoctorRepository
	EventPublisher   contracts.AvailabilityEventPublisher
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAvailabilityUsecase(
	doctorRepository contracts.DoctorRepository,
	eventPublisher contracts.AvailabilityEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		DoctorRepository: doctorRepository,
		EventPublisher:   eventPublisher,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *availabilityUsecase) FindAvailability(ctx context.Context, request *requests.FindAvailability) ([]responses.DayAvailability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.FindAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingStartDateKey, request.StartDate),
		zap.String(constvars.LoggingEndDateKey, request.EndDate),
	)

	// reject bad ranges before touching the store
	start, end, err := ParseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}
	maxDays := uc.InternalConfig.App.AvailabilityMaxRangeInDays
	if days := utils.DaysInRange(start, end); maxDays > 0 && days > maxDays {
		return nil, exceptions.ErrDateRangeTooLong(days, maxDays)
	}

	var (
		doctors           []models.Doctor
		includeDoctorMeta bool
	)
	if request.DoctorID != "" {
		doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrDoctorNotFound(nil, request.DoctorID)
		}
		doctors = []models.Doctor{*doctor}
	} else {
		doctors, err = uc.DoctorRepository.FindDoctors(ctx, request.Filter)
		if err != nil {
			uc.Log.Error("availabilityUsecase.FindAvailability error fetching doctors",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		includeDoctorMeta = true
	}

	result, err := Resolve(doctors, request.StartDate, request.EndDate, includeDoctorMeta)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.FindAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
		zap.Int(constvars.LoggingResultCountKey, len(result)),
	)
	return result, nil
}

func (uc *availabilityUsecase) ReplaceWeeklyAvailability(ctx context.Context, doctorID string, request *requests.ReplaceWeeklyAvailability) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.ReplaceWeeklyAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingRuleCountKey, len(request.Availability)),
	)

	utils.SanitizeReplaceWeeklyAvailabilityRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorRepository.ReplaceAvailability(ctx, doctorID, utils.BuildWeeklyAvailabilityRules(request))
	if err != nil {
		uc.Log.Error("availabilityUsecase.ReplaceWeeklyAvailability error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	uc.publish(ctx, models.EventAvailabilityReplaced, doctorID, "")

	response := utils.ConvertDoctorToResponse(doctor, true)
	return &response, nil
}

func (uc *availabilityUsecase) UpsertUnavailability(ctx context.Context, doctorID string, request *requests.UpsertUnavailability) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.UpsertUnavailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.Int(constvars.LoggingSlotCountKey, len(request.Slots)),
	)

	utils.SanitizeUpsertUnavailabilityRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	date, err := utils.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	entry := models.UnavailabilityException{
		Date:   date,
		Slots:  utils.BuildTimeIntervals(request.Slots),
		Reason: request.Reason,
	}
	doctor, err := uc.DoctorRepository.UpsertUnavailability(ctx, doctorID, entry)
	if err != nil {
		uc.Log.Error("availabilityUsecase.UpsertUnavailability error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	uc.publish(ctx, models.EventUnavailabilityUpserted, doctorID, request.Date)

	response := utils.ConvertDoctorToResponse(doctor, true)
	return &response, nil
}

// RemoveUnavailability succeeds even when nothing was recorded for the date. Only a real
// removal publishes an event.
func (uc *availabilityUsecase) RemoveUnavailability(ctx context.Context, doctorID string, request *requests.RemoveUnavailability) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.RemoveUnavailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	date, err := utils.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, removed, err := uc.DoctorRepository.RemoveUnavailability(ctx, doctorID, date)
	if err != nil {
		uc.Log.Error("availabilityUsecase.RemoveUnavailability error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	if removed {
		uc.publish(ctx, models.EventUnavailabilityRemoved, doctorID, request.Date)
	}

	response := utils.ConvertDoctorToResponse(doctor, true)
	return &response, nil
}

// publish never fails the request: the schedule change is already stored.
func (uc *availabilityUsecase) publish(ctx context.Context, eventType models.AvailabilityEventType, doctorID, date string) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.AvailabilityEvent{
		EventID:    utils.GenerateEventID(),
		Type:       eventType,
		DoctorID:   doctorID,
		Date:       date,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("availabilityUsecase.publish failed to publish availability event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, string(eventType)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
}
