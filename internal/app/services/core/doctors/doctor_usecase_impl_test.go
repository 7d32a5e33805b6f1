package doctors

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) doctorResult(args mock.Arguments) (*models.Doctor, error) {
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return m.doctorResult(m.Called(ctx, doctorID))
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return m.doctorResult(m.Called(ctx, email))
}

func (m *MockDoctorRepository) FindDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	args := m.Called(ctx, filter)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) SaveDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	return m.doctorResult(m.Called(ctx, doctor))
}

func (m *MockDoctorRepository) ReplaceAvailability(ctx context.Context, doctorID string, rules []models.WeeklyAvailabilityRule) (*models.Doctor, error) {
	return m.doctorResult(m.Called(ctx, doctorID, rules))
}

func (m *MockDoctorRepository) UpsertUnavailability(ctx context.Context, doctorID string, entry models.UnavailabilityException) (*models.Doctor, error) {
	return m.doctorResult(m.Called(ctx, doctorID, entry))
}

func (m *MockDoctorRepository) RemoveUnavailability(ctx context.Context, doctorID string, date time.Time) (*models.Doctor, bool, error) {
	args := m.Called(ctx, doctorID, date)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Bool(1), args.Error(2)
}

func (m *MockDoctorRepository) SetVerified(ctx context.Context, doctorID string, verified bool) (*models.Doctor, error) {
	return m.doctorResult(m.Called(ctx, doctorID, verified))
}

func (m *MockDoctorRepository) EnsureIndexes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockDoctorRepository) ListIndexes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func newTestDoctor() *models.Doctor {
	return &models.Doctor{
		ID:             primitive.NewObjectID(),
		Name:           "Dr. Ana",
		Email:          "ana@example.com",
		Password:       "hashed",
		Specialization: "Cardiology",
		Gender:         "female",
		Languages:      []string{"en"},
		Price:          40,
		Rating:         4.8,
		IsVerified:     true,
	}
}

func TestDoctorUsecase_GetDoctorProfile(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("public profile hides email", func(t *testing.T) {
		doctor := newTestDoctor()
		repo := new(MockDoctorRepository)
		repo.On("FindByID", ctx, doctor.ID.Hex()).Return(doctor, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		result, err := uc.GetDoctorProfile(ctx, doctor.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, doctor.ID.Hex(), result.ID)
		assert.Empty(t, result.Email)
		repo.AssertExpectations(t)
	})

	t.Run("own profile shows email", func(t *testing.T) {
		doctor := newTestDoctor()
		repo := new(MockDoctorRepository)
		repo.On("FindByID", ctx, doctor.ID.Hex()).Return(doctor, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		result, err := uc.GetOwnProfile(ctx, doctor.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", result.Email)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByID", ctx, "missing").Return(nil, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.GetDoctorProfile(ctx, "missing")

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusNotFound))
	})
}

func TestDoctorUsecase_UpdateOwnProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only provided fields", func(t *testing.T) {
		doctor := newTestDoctor()
		name := "Dr. Ana Maria"
		price := 55.0

		repo := new(MockDoctorRepository)
		repo.On("FindByID", ctx, doctor.ID.Hex()).Return(doctor, nil).Once()
		repo.On("SaveDoctor", ctx, mock.MatchedBy(func(d *models.Doctor) bool {
			return d.Name == name && d.Price == price && d.Specialization == "Cardiology"
		})).Return(doctor, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		result, err := uc.UpdateOwnProfile(ctx, doctor.ID.Hex(), &requests.UpdateDoctorProfile{
			Name:  &name,
			Price: &price,
		})

		require.NoError(t, err)
		assert.Equal(t, name, result.Name)
		repo.AssertExpectations(t)
	})

	t.Run("trims provided fields", func(t *testing.T) {
		doctor := newTestDoctor()
		specialization := "  Dermatology "
		gender := " Male "

		repo := new(MockDoctorRepository)
		repo.On("FindByID", ctx, doctor.ID.Hex()).Return(doctor, nil).Once()
		repo.On("SaveDoctor", ctx, mock.MatchedBy(func(d *models.Doctor) bool {
			return d.Specialization == "Dermatology" && d.Gender == "male" &&
				assert.ObjectsAreEqual([]string{"en", "id"}, d.Languages)
		})).Return(doctor, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.UpdateOwnProfile(ctx, doctor.ID.Hex(), &requests.UpdateDoctorProfile{
			Specialization: &specialization,
			Gender:         &gender,
			Languages:      []string{" en", "  ", "id "},
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		name := "   "
		specialization := "  Cardiology "
		repo := new(MockDoctorRepository)

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.UpdateOwnProfile(ctx, "id", &requests.UpdateDoctorProfile{
			Name:           &name,
			Specialization: &specialization,
		})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusBadRequest))
		repo.AssertNotCalled(t, "SaveDoctor", mock.Anything, mock.Anything)
	})

	t.Run("invalid gender", func(t *testing.T) {
		gender := "unknown"
		repo := new(MockDoctorRepository)

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.UpdateOwnProfile(ctx, "id", &requests.UpdateDoctorProfile{Gender: &gender})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusBadRequest))
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestDoctorUsecase_FindDoctors(t *testing.T) {
	ctx := context.Background()
	filter := models.DoctorFilter{Specialization: "Cardiology", VerifiedOnly: true}

	t.Run("maps doctors", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindDoctors", ctx, filter).Return([]models.Doctor{*newTestDoctor(), *newTestDoctor()}, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		result, err := uc.FindDoctors(ctx, filter)

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Empty(t, result[0].Email)
	})

	t.Run("store failure is propagated", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		repo := new(MockDoctorRepository)
		repo.On("FindDoctors", ctx, filter).Return(nil, storeErr).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.FindDoctors(ctx, filter)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	ctx := context.Background()
	request := func() *requests.CreateDoctor {
		return &requests.CreateDoctor{
			Name:           " Dr. Budi ",
			Email:          " Budi@Example.com ",
			Password:       "supersecret",
			Specialization: "Dermatology",
			Gender:         "male",
			Languages:      []string{"id"},
			Price:          25,
		}
	}

	t.Run("creates doctor with hashed password", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "budi@example.com").Return(nil, nil).Once()
		repo.On("CreateDoctor", ctx, mock.MatchedBy(func(d *models.Doctor) bool {
			return d.Email == "budi@example.com" && utils.CheckPasswordHash("supersecret", d.Password)
		})).Return("665f1c2e8b3e4a0012345678", nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		result, err := uc.CreateDoctor(ctx, request())

		require.NoError(t, err)
		assert.Equal(t, "Dr. Budi", result.Name)
		assert.Equal(t, "budi@example.com", result.Email)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "budi@example.com").Return(newTestDoctor(), nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.CreateDoctor(ctx, request())

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusConflict))
		repo.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		in := request()
		in.Password = "short"

		uc := NewDoctorUsecase(new(MockDoctorRepository), zap.NewNop())
		_, err := uc.CreateDoctor(ctx, in)

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusBadRequest))
	})
}

func TestDoctorUsecase_SetDoctorVerification(t *testing.T) {
	ctx := context.Background()
	verified := false

	t.Run("updates flag", func(t *testing.T) {
		doctor := newTestDoctor()
		doctor.IsVerified = false
		repo := new(MockDoctorRepository)
		repo.On("SetVerified", ctx, doctor.ID.Hex(), false).Return(doctor, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		result, err := uc.SetDoctorVerification(ctx, doctor.ID.Hex(), &requests.UpdateDoctorVerification{IsVerified: &verified})

		require.NoError(t, err)
		assert.False(t, result.IsVerified)
	})

	t.Run("missing flag", func(t *testing.T) {
		uc := NewDoctorUsecase(new(MockDoctorRepository), zap.NewNop())
		_, err := uc.SetDoctorVerification(ctx, "id", &requests.UpdateDoctorVerification{})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusBadRequest))
	})

	t.Run("unknown doctor", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("SetVerified", ctx, "665f1c2e8b3e4a0012345678", false).Return(nil, nil).Once()

		uc := NewDoctorUsecase(repo, zap.NewNop())
		_, err := uc.SetDoctorVerification(ctx, "665f1c2e8b3e4a0012345678", &requests.UpdateDoctorVerification{IsVerified: &verified})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusNotFound))
	})
}
