package session

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, doctor *models.Doctor) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	ttl := time.Duration(svc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		DoctorID:  doctor.ID.Hex(),
		Email:     doctor.Email,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	err := svc.RedisRepository.Set(ctx, utils.BuildSessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)
	return session, nil
}

// GetSession fails with an invalid session error once the key has expired or been deleted.
func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, utils.BuildSessionKey(sessionID))
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrParseSessionData(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, utils.BuildSessionKey(sessionID))
}
