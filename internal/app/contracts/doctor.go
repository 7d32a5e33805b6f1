package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type DoctorUsecase interface {
	GetDoctorProfile(ctx context.Context, doctorID string) (*responses.Doctor, error)
	GetOwnProfile(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpdateOwnProfile(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
	FindDoctors(ctx context.Context, filter models.DoctorFilter) ([]responses.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	SetDoctorVerification(ctx context.Context, doctorID string, request *requests.UpdateDoctorVerification) (*responses.Doctor, error)
}

// DoctorRepository returns nil without an error when a doctor does not exist.
type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	SaveDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	ReplaceAvailability(ctx context.Context, doctorID string, rules []models.WeeklyAvailabilityRule) (*models.Doctor, error)
	UpsertUnavailability(ctx context.Context, doctorID string, entry models.UnavailabilityException) (*models.Doctor, error)
	RemoveUnavailability(ctx context.Context, doctorID string, date time.Time) (doctor *models.Doctor, removed bool, err error)
	SetVerified(ctx context.Context, doctorID string, verified bool) (*models.Doctor, error)
	EnsureIndexes(ctx context.Context) ([]string, error)
	ListIndexes(ctx context.Context) ([]string, error)
}
