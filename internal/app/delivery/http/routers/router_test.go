package routers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginDoctor, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.LoginDoctor)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
	contracts.DoctorUsecase
}

func (m *MockDoctorUsecase) GetDoctorProfile(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*responses.Doctor)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) GetOwnProfile(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*responses.Doctor)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Doctor)
	return result, args.Error(1)
}

type MockAvailabilityUsecase struct {
	mock.Mock
	contracts.AvailabilityUsecase
}

func (m *MockAvailabilityUsecase) FindAvailability(ctx context.Context, request *requests.FindAvailability) ([]responses.DayAvailability, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.DayAvailability)
	return result, args.Error(1)
}

func (m *MockAvailabilityUsecase) RemoveUnavailability(ctx context.Context, doctorID string, request *requests.RemoveUnavailability) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	result, _ := args.Get(0).(*responses.Doctor)
	return result, args.Error(1)
}

type MockHealthUsecase struct {
	mock.Mock
}

func (m *MockHealthUsecase) Check(ctx context.Context) *responses.HealthCheck {
	return m.Called(ctx).Get(0).(*responses.HealthCheck)
}

type testServer struct {
	router       *chi.Mux
	auth         *MockAuthUsecase
	doctor       *MockDoctorUsecase
	availability *MockAvailabilityUsecase
	health       *MockHealthUsecase
}

func newTestServer() *testServer {
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			MaxRequests:                100,
			MaxTimeRequestsPerSeconds:  60,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
			LoginMaxAttempts:           1,
			SuperadminAPIKey:           "admin-key",
			SuperadminAPIKeyRateLimit:  100,
		},
	}
	logger := zap.NewNop()

	s := &testServer{
		router:       chi.NewRouter(),
		auth:         new(MockAuthUsecase),
		doctor:       new(MockDoctorUsecase),
		availability: new(MockAvailabilityUsecase),
		health:       new(MockHealthUsecase),
	}

	SetupRoutes(
		s.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, s.auth, internalConfig),
		controllers.NewAuthController(logger, s.auth, internalConfig),
		controllers.NewDoctorController(logger, s.doctor, internalConfig),
		controllers.NewAvailabilityController(logger, s.availability, internalConfig),
		controllers.NewHealthController(logger, s.health),
	)
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func TestSetupRoutes_Public(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		s := newTestServer()
		s.health.On("Check", mock.Anything).Return(&responses.HealthCheck{Status: "healthy", Ready: true}).Once()

		rr := s.do(httptest.NewRequest("GET", "/api/v1/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("availability", func(t *testing.T) {
		s := newTestServer()
		s.availability.On("FindAvailability", mock.Anything, mock.Anything).Return([]responses.DayAvailability{}, nil).Once()

		rr := s.do(httptest.NewRequest("GET", "/api/v1/availability?startDate=2024-06-10&endDate=2024-06-10", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		s.availability.AssertExpectations(t)
	})

	t.Run("doctor by id", func(t *testing.T) {
		s := newTestServer()
		s.doctor.On("GetDoctorProfile", mock.Anything, "doc-1").Return(&responses.Doctor{ID: "doc-1"}, nil).Once()

		rr := s.do(httptest.NewRequest("GET", "/api/v1/doctors/doc-1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		s.doctor.AssertExpectations(t)
	})
}

func TestSetupRoutes_DoctorSelfService(t *testing.T) {
	t.Run("me without token", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(httptest.NewRequest("GET", "/api/v1/doctors/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		s.doctor.AssertNotCalled(t, "GetDoctorProfile", mock.Anything, mock.Anything)
	})

	t.Run("me resolves to the session doctor", func(t *testing.T) {
		s := newTestServer()
		s.auth.On("Authenticate", mock.Anything, "jwt").Return(&models.Session{SessionID: "sess-1", DoctorID: "doc-1"}, nil).Once()
		s.doctor.On("GetOwnProfile", mock.Anything, "doc-1").Return(&responses.Doctor{ID: "doc-1"}, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/doctors/me", nil)
		req.Header.Set("Authorization", "Bearer jwt")
		rr := s.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		s.doctor.AssertExpectations(t)
	})

	t.Run("remove unavailability", func(t *testing.T) {
		s := newTestServer()
		s.auth.On("Authenticate", mock.Anything, "jwt").Return(&models.Session{SessionID: "sess-1", DoctorID: "doc-1"}, nil).Once()
		s.availability.On("RemoveUnavailability", mock.Anything, "doc-1", &requests.RemoveUnavailability{Date: "2024-06-10"}).
			Return(&responses.Doctor{ID: "doc-1"}, nil).Once()

		req := httptest.NewRequest("DELETE", "/api/v1/doctors/me/unavailability/2024-06-10", nil)
		req.Header.Set("Authorization", "Bearer jwt")
		rr := s.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		s.availability.AssertExpectations(t)
	})

	t.Run("expired session", func(t *testing.T) {
		s := newTestServer()
		s.auth.On("Authenticate", mock.Anything, "stale").Return(nil, exceptions.ErrInvalidSession(nil)).Once()

		req := httptest.NewRequest("GET", "/api/v1/doctors/me", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rr := s.do(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSetupRoutes_Admin(t *testing.T) {
	body := `{"name":"Dr. Ana","email":"ana@example.com","password":"supersecret","specialization":"Cardiology"}`

	t.Run("missing api key", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(httptest.NewRequest("POST", "/api/v1/admin/doctors", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		s.doctor.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
	})

	t.Run("valid api key", func(t *testing.T) {
		s := newTestServer()
		s.doctor.On("CreateDoctor", mock.Anything, mock.Anything).Return(&responses.Doctor{ID: "doc-1"}, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/admin/doctors", strings.NewReader(body))
		req.Header.Set("x-api-key", "admin-key")
		rr := s.do(req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestSetupRoutes_LoginThrottle(t *testing.T) {
	s := newTestServer()
	s.auth.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidEmailOrPassword(nil)).Times(2)

	login := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"wrongpassword"}`))
		return s.do(req)
	}

	assert.Equal(t, http.StatusUnauthorized, login().Code)
	assert.Equal(t, http.StatusUnauthorized, login().Code)

	rr := login()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	s.auth.AssertExpectations(t)
}
