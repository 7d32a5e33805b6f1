package contracts

import (
	"carelink-service/internal/app/models"
	"context"
)

type SessionService interface {
	CreateSession(ctx context.Context, doctor *models.Doctor) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
