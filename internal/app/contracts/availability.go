package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AvailabilityUsecase interface {
	FindAvailability(ctx context.Context, request *requests.FindAvailability) ([]responses.DayAvailability, error)
	ReplaceWeeklyAvailability(ctx context.Context, doctorID string, request *requests.ReplaceWeeklyAvailability) (*responses.Doctor, error)
	UpsertUnavailability(ctx context.Context, doctorID string, request *requests.UpsertUnavailability) (*responses.Doctor, error)
	RemoveUnavailability(ctx context.Context, doctorID string, request *requests.RemoveUnavailability) (*responses.Doctor, error)
}

type AvailabilityEventPublisher interface {
	Publish(ctx context.Context, event *models.AvailabilityEvent) error
}
