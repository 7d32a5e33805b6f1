package auth

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

type authUsecase struct {
	DoctorRepository contracts.DoctorRepository
	SessionService   contracts.SessionService
	ResourceLimiter  contracts.ResourceLimiter
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAuthUsecase(
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	resourceLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		DoctorRepository: doctorRepository,
		SessionService:   sessionService,
		ResourceLimiter:  resourceLimiter,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginDoctor, error) {
	requestID := utils.GetRequestID(ctx)

	utils.SanitizeLoginDoctorRequest(request)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if err := uc.checkLoginQuota(ctx, request.Email); err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !utils.CheckPasswordHash(request.Password, doctor.Password) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "medium",
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, doctor)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_logged_in", requestID,
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)

	return &responses.LoginDoctor{
		Token:     token,
		DoctorID:  session.DoctorID,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionService.GetSession(ctx, sessionID)
}

// checkLoginQuota lets the attempt through when the limiter itself is unavailable.
func (uc *authUsecase) checkLoginQuota(ctx context.Context, email string) error {
	requestID := utils.GetRequestID(ctx)

	out, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:      email,
		LimiterGroupName:  constvars.LimiterGroupLogin,
		WindowDurationSec: uc.InternalConfig.App.LoginAttemptWindowInSeconds,
		MaxQuota:          uc.InternalConfig.App.LoginMaxAttempts,
	})
	if err != nil {
		uc.Log.Warn("authUsecase.checkLoginQuota limiter unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if !out.Allowed {
		utils.LogSecurityEvent(uc.Log, "login_rate_limited", requestID, "high",
			zap.String(constvars.LoggingEmailKey, email),
			zap.Int(constvars.LoggingRetryAfterKey, out.RetryAfterSecs),
		)
		return exceptions.ErrTooManyLoginAttempts(nil)
	}
	return nil
}
