package auth

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
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

const testSecret = "test-secret"

// MockDoctorRepository only implements the lookups the login flow uses.
type MockDoctorRepository struct {
	mock.Mock
	contracts.DoctorRepository
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, doctor *models.Doctor) (*models.Session, error) {
	args := m.Called(ctx, doctor)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.ApplyResourceLimiterOutput)
	return out, args.Error(1)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginMaxAttempts: 5, LoginAttemptWindowInSeconds: 900},
		JWT: config.AppJWT{Secret: testSecret},
	}
}

func testDoctor(t *testing.T) *models.Doctor {
	hash, err := utils.HashPassword("supersecret")
	require.NoError(t, err)
	return &models.Doctor{ID: primitive.NewObjectID(), Email: "ana@example.com", Password: hash}
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	allowed := &contracts.ApplyResourceLimiterOutput{Allowed: true}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		doctor := testDoctor(t)
		session := &models.Session{SessionID: "sess-1", DoctorID: doctor.ID.Hex(), ExpiresAt: time.Now().Add(time.Hour).UTC()}

		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "ana@example.com").Return(doctor, nil).Once()
		sessions := new(MockSessionService)
		sessions.On("CreateSession", ctx, doctor).Return(session, nil).Once()
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", ctx, mock.MatchedBy(func(in *contracts.ApplyResourceLimiterInput) bool {
			return in.ResourceName == "ana@example.com" && in.LimiterGroupName == constvars.LimiterGroupLogin && in.MaxQuota == 5
		})).Return(allowed, nil).Once()

		uc := NewAuthUsecase(repo, sessions, limiter, testInternalConfig(), zap.NewNop())
		result, err := uc.Login(ctx, &requests.LoginDoctor{Email: " Ana@Example.com ", Password: "supersecret"})

		require.NoError(t, err)
		assert.Equal(t, doctor.ID.Hex(), result.DoctorID)

		sessionID, err := utils.ParseSessionJWT(result.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "sess-1", sessionID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "ana@example.com").Return(testDoctor(t), nil).Once()
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", ctx, mock.Anything).Return(allowed, nil).Once()
		sessions := new(MockSessionService)

		uc := NewAuthUsecase(repo, sessions, limiter, testInternalConfig(), zap.NewNop())
		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: "ana@example.com", Password: "wrongpassword"})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusUnauthorized))
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", ctx, mock.Anything).Return(allowed, nil).Once()

		uc := NewAuthUsecase(repo, new(MockSessionService), limiter, testInternalConfig(), zap.NewNop())
		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: "nobody@example.com", Password: "supersecret"})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusUnauthorized))
	})

	t.Run("too many attempts", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", ctx, mock.Anything).
			Return(&contracts.ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: 120}, nil).Once()

		uc := NewAuthUsecase(repo, new(MockSessionService), limiter, testInternalConfig(), zap.NewNop())
		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: "ana@example.com", Password: "supersecret"})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusTooManyRequests))
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("limiter outage does not block login", func(t *testing.T) {
		doctor := testDoctor(t)
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "ana@example.com").Return(doctor, nil).Once()
		sessions := new(MockSessionService)
		sessions.On("CreateSession", ctx, doctor).
			Return(&models.Session{SessionID: "sess-2", DoctorID: doctor.ID.Hex(), ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", ctx, mock.Anything).Return(nil, errors.New("redis down")).Once()

		uc := NewAuthUsecase(repo, sessions, limiter, testInternalConfig(), zap.NewNop())
		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: "ana@example.com", Password: "supersecret"})

		require.NoError(t, err)
	})

	t.Run("invalid email format", func(t *testing.T) {
		limiter := new(MockResourceLimiter)

		uc := NewAuthUsecase(new(MockDoctorRepository), new(MockSessionService), limiter, testInternalConfig(), zap.NewNop())
		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: "not-an-email", Password: "supersecret"})

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusBadRequest))
		limiter.AssertNotCalled(t, "ApplyResourceLimiter", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", testSecret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		sessions := new(MockSessionService)
		sessions.On("GetSession", ctx, "sess-1").Return(&models.Session{SessionID: "sess-1", DoctorID: "doc-1"}, nil).Once()

		uc := NewAuthUsecase(new(MockDoctorRepository), sessions, new(MockResourceLimiter), testInternalConfig(), zap.NewNop())
		session, err := uc.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "doc-1", session.DoctorID)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", "other-secret", time.Now().Add(time.Hour))
		require.NoError(t, err)
		sessions := new(MockSessionService)

		uc := NewAuthUsecase(new(MockDoctorRepository), sessions, new(MockResourceLimiter), testInternalConfig(), zap.NewNop())
		_, err = uc.Authenticate(ctx, token)

		require.Error(t, err)
		assert.True(t, exceptions.HasStatus(err, constvars.StatusUnauthorized))
		sessions.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	sessions := new(MockSessionService)
	sessions.On("DeleteSession", mock.Anything, "sess-1").Return(nil).Once()

	uc := NewAuthUsecase(new(MockDoctorRepository), sessions, new(MockResourceLimiter), testInternalConfig(), zap.NewNop())
	err := uc.Logout(context.Background(), "sess-1")

	require.NoError(t, err)
	sessions.AssertExpectations(t)
}
