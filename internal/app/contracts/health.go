package contracts

import (
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type HealthUsecase interface {
	Check(ctx context.Context) *responses.HealthCheck
}
