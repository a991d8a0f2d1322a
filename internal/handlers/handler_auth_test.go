package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	"github.com/dayboard/dayboard_backend/internal/core/domain"
	"github.com/dayboard/dayboard_backend/internal/dto"
	"github.com/dayboard/dayboard_backend/internal/middleware"
	"github.com/dayboard/dayboard_backend/internal/utils"
)

const (
	testSecret = "test-secret"
	testIssuer = "dayboard-test"
)

// mockAuthService mocks portssvc.AuthSvcFacade.
type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, req dto.SignInRequest) (string, string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockAuthService) RefreshAccessToken(ctx context.Context, refreshTokenString string) (string, error) {
	args := m.Called(ctx, refreshTokenString)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	args := m.Called(ctx, tokenString, newPassword)
	return args.Error(0)
}

// stubRevoker never reports a token as revoked.
type stubRevoker struct{}

func (stubRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (stubRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAuthRoutes(r, svc)
	authed := r.Group("/", middleware.AuthMiddleware(testSecret, stubRevoker{}))
	registerLogoutRoute(authed, svc)
	return r
}

func doJSON(r *gin.Engine, method, path, body, authHeader string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignUpHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("SignUp", mock.Anything, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"}).
			Return(&domain.User{UserID: 1, Email: "a@x.com"}, nil)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/sign-up", `{"email":"a@x.com","password":"secret123"}`, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "User created successfully")
		svc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("SignUp", mock.Anything, mock.Anything).Return(nil, apperrors.ErrValidation)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/sign-up", `{"email":"a@x.com"}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email and password are required")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("SignUp", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/sign-up", `{"email":"a@x.com","password":"secret123"}`, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockAuthService)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/sign-up", `{not json`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "SignUp")
	})
}

func TestSignInHandler(t *testing.T) {
	t.Run("returns both tokens", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("SignIn", mock.Anything, dto.SignInRequest{Email: "a@x.com", Password: "secret123"}).
			Return("the-access-token", "the-refresh-token", nil)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/sign-in", `{"email":"a@x.com","password":"secret123"}`, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"the-access-token"`)
		assert.Contains(t, w.Body.String(), `"refresh_token":"the-refresh-token"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("SignIn", mock.Anything, mock.Anything).Return("", "", apperrors.ErrUnauthorized)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/sign-in", `{"email":"a@x.com","password":"wrong"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})
}

func TestForgotPasswordHandlerAlwaysReportsSuccess(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("ForgotPassword", mock.Anything, "nobody@x.com").Return(nil)

	w := doJSON(newAuthRouter(svc), http.MethodPost, "/forgot-password", `{"email":"nobody@x.com"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password reset email sent")
	svc.AssertExpectations(t)
}

func TestResetPasswordHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("ResetPassword", mock.Anything, "tok123", "newpass456").Return(nil)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/reset-password/tok123", `{"new_password":"newpass456"}`, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Password updated successfully")
		svc.AssertExpectations(t)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("ResetPassword", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrUnauthorized)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/reset-password/bad", `{"new_password":"newpass456"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("user gone", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("ResetPassword", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrNotFound)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/reset-password/tok123", `{"new_password":"newpass456"}`, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})
}

func TestRefreshTokenHandler(t *testing.T) {
	t.Run("mints new access token", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("RefreshAccessToken", mock.Anything, "the-refresh-token").Return("new-access-token", nil)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/refresh-token", "", "the-refresh-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"new-access-token"`)
	})

	t.Run("missing header", func(t *testing.T) {
		svc := new(mockAuthService)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/refresh-token", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "RefreshAccessToken")
	})

	t.Run("rejected token", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("RefreshAccessToken", mock.Anything, mock.Anything).Return("", apperrors.ErrUnauthorized)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/refresh-token", "", "stale-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid refresh token")
	})
}

func TestLogoutHandler(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		svc := new(mockAuthService)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/logout", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication required")
		svc.AssertNotCalled(t, "Logout")
	})

	t.Run("revokes the presented token", func(t *testing.T) {
		token, err := utils.GenerateToken(7, "a@x.com", utils.TokenTypeAccess, testSecret, testIssuer, time.Minute)
		require.NoError(t, err)
		claims, err := utils.ParseAndValidateToken(token, testSecret)
		require.NoError(t, err)

		svc := new(mockAuthService)
		svc.On("Logout", mock.Anything, claims.ID, mock.AnythingOfType("time.Time")).Return(nil)

		w := doJSON(newAuthRouter(svc), http.MethodPost, "/logout", "", token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Successfully logged out")
		svc.AssertExpectations(t)
	})
}
