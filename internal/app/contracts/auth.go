package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginDoctor, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate resolves a bearer token into the live session it was issued for.
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}
