package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/auth"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken, accessTokenID string, accessTTL time.Duration) error {
	args := m.Called(ctx, refreshToken, accessTokenID, accessTTL)
	return args.Error(0)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Logout_BlacklistsRequestToken(t *testing.T) {
	tokenID := uuid.New().String()
	c, rec := newTestContext(http.MethodPost, "/api/admin/logout", `{"refresh_token":"the-refresh-token"}`)

	// The JWT middleware stores the verified request token under "user".
	c.Set("user", &jwt.Token{
		Claims: &auth.Claims{
			AdminID:  uuid.New().String(),
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        tokenID,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
			},
		},
		Valid: true,
	})

	mockAuth := new(MockAuthService)
	mockAuth.On("Logout", mock.Anything, "the-refresh-token", tokenID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 9*time.Minute && ttl <= 10*time.Minute
	})).Return(nil)

	h := NewAuthHandler(mockAuth)
	err := h.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Logout_WithoutRequestToken(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "/api/admin/logout", `{"refresh_token":"the-refresh-token"}`)

	mockAuth := new(MockAuthService)
	mockAuth.On("Logout", mock.Anything, "the-refresh-token", "", time.Duration(0)).Return(nil)

	h := NewAuthHandler(mockAuth)
	err := h.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	mockAuth.AssertExpectations(t)
}
