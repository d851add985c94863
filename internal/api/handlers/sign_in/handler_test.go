package sign_in

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/auth"
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignIn(ctx context.Context, req *models.SignInRequest) (*domain.Session, error) {
	args := m.Called(ctx, req.Login, req.Password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var cookies = middleware.Cookies{Name: "sid", TTL: time.Hour}

func TestHandle_Success(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("SignIn", mock.Anything, "111", "pw").Return(&domain.Session{
		ID: "abc", UserID: 1, Name: "A", Email: "a@x.com", Phone: "111", ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	h := NewHandler(svc, cookies, logger.Discard())
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"phone":"111","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Handle(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"user":{"id":1,"name":"A","email":"a@x.com","phone":"111"}}`, rr.Body.String())

	set := rr.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "abc", set[0].Value)
	assert.True(t, set[0].HttpOnly)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
	}{
		{
			name: "Wrong password",
			body: `{"login":"a@x.com","password":"bad"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("SignIn", mock.Anything, "a@x.com", "bad").Return(nil, auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong password longer than bcrypt limit",
			body: `{"login":"a@x.com","password":"` + strings.Repeat("x", 80) + `"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("SignIn", mock.Anything, "a@x.com", strings.Repeat("x", 80)).Return(nil, auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing login",
			body:           `{"password":"pw"}`,
			mockSetup:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing password",
			body:           `{"login":"a@x.com"}`,
			mockSetup:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			tt.mockSetup(svc)
			h := NewHandler(svc, cookies, logger.Discard())

			req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.Handle(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Empty(t, rr.Result().Cookies())
			svc.AssertExpectations(t)
		})
	}
}
