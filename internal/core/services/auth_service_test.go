package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	"github.com/dayboard/dayboard_backend/internal/core/domain"
	"github.com/dayboard/dayboard_backend/internal/core/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
	"github.com/dayboard/dayboard_backend/internal/platform/config"
	"github.com/dayboard/dayboard_backend/internal/utils"
)

// --- Fakes ---

// fakeUserRepository is a closure-driven fake in the style of the rest of
// the service tests.
type fakeUserRepository struct {
	SaveUserFn        func(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByIDFn    func(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordFn  func(ctx context.Context, userID int64, passwordHash string) error
	DeleteUserFn      func(ctx context.Context, userID int64) error
}

func (f *fakeUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	return f.SaveUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return f.FindUserByIDFn(ctx, userID)
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.FindUserByEmailFn(ctx, email)
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return f.UpdatePasswordFn(ctx, userID, passwordHash)
}

func (f *fakeUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	return f.DeleteUserFn(ctx, userID)
}

// memoryRevoker is an in-process revocation list for tests.
type memoryRevoker struct {
	mu      sync.Mutex
	entries map[string]time.Duration
}

func newMemoryRevoker() *memoryRevoker {
	return &memoryRevoker{entries: map[string]time.Duration{}}
}

func (m *memoryRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[tokenID] = ttl
	return nil
}

func (m *memoryRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[tokenID]
	return ok, nil
}

// fakeMailer records delivered reset tokens.
type fakeMailer struct {
	sentTo     []string
	sentTokens []string
}

func (f *fakeMailer) SendPasswordReset(ctx context.Context, toEmail, resetToken string) error {
	f.sentTo = append(f.sentTo, toEmail)
	f.sentTokens = append(f.sentTokens, resetToken)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTIssuer:          "dayboard-test",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 720 * time.Hour,
	}
}

// newUserStore wires a fakeUserRepository around a single in-memory user
// table so sign-up and sign-in can round-trip.
func newUserStore() (*fakeUserRepository, *map[string]domain.User) {
	users := map[string]domain.User{}
	nextID := int64(0)
	repo := &fakeUserRepository{
		SaveUserFn: func(ctx context.Context, user domain.User) (*domain.User, error) {
			if _, exists := users[user.Email]; exists {
				return nil, apperrors.ErrDuplicate
			}
			nextID++
			user.UserID = nextID
			users[user.Email] = user
			return &user, nil
		},
		FindUserByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			user, ok := users[email]
			if !ok {
				return nil, apperrors.ErrNotFound
			}
			return &user, nil
		},
		UpdatePasswordFn: func(ctx context.Context, userID int64, passwordHash string) error {
			for email, user := range users {
				if user.UserID == userID {
					user.PasswordHash = passwordHash
					users[email] = user
					return nil
				}
			}
			return apperrors.ErrNotFound
		},
	}
	return repo, &users
}

// --- Tests ---

func TestSignUpThenSignInSucceeds(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})
	ctx := context.Background()

	user, err := svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be stored hashed")

	accessToken, refreshToken, err := svc.SignIn(ctx, dto.SignInRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := utils.ParseAndValidateToken(accessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, accessClaims.TokenType)
	assert.Equal(t, user.UserID, accessClaims.UserID)

	refreshClaims, err := utils.ParseAndValidateToken(refreshToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeRefresh, refreshClaims.TokenType)
}

func TestSignUpRejectsMissingFields(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})

	_, err := svc.SignUp(context.Background(), dto.SignUpRequest{Email: "", Password: "x"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@x.com", Password: ""})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	repo, users := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})
	ctx := context.Background()

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "different"})
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.Len(t, *users, 1, "no duplicate row may be created")
}

func TestSignInFailuresAreIndistinguishable(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})
	ctx := context.Background()

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, wrongPassErr := svc.SignIn(ctx, dto.SignInRequest{Email: "a@x.com", Password: "wrong"})
	_, _, unknownEmailErr := svc.SignIn(ctx, dto.SignInRequest{Email: "nobody@x.com", Password: "secret123"})

	assert.True(t, errors.Is(wrongPassErr, apperrors.ErrUnauthorized))
	assert.True(t, errors.Is(unknownEmailErr, apperrors.ErrUnauthorized))
	assert.Equal(t, wrongPassErr, unknownEmailErr, "the two failures must not be distinguishable")
}

func TestLogoutRevokesForRemainingLifetime(t *testing.T) {
	repo, _ := newUserStore()
	revoker := newMemoryRevoker()
	svc := services.NewAuthService(testConfig(), repo, revoker, &fakeMailer{})
	ctx := context.Background()

	expiresAt := time.Now().Add(10 * time.Minute)
	require.NoError(t, svc.Logout(ctx, "jti-abc", expiresAt))

	revoked, err := revoker.IsRevoked(ctx, "jti-abc")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.InDelta(t, (10 * time.Minute).Seconds(), revoker.entries["jti-abc"].Seconds(), 5)
}

func TestRefreshTokenSurvivesAccessTokenRevocation(t *testing.T) {
	// Documents the known gap: revoking an access token does not touch its
	// paired refresh token, so a logged-out client can still mint fresh
	// access tokens.
	repo, _ := newUserStore()
	revoker := newMemoryRevoker()
	svc := services.NewAuthService(testConfig(), repo, revoker, &fakeMailer{})
	ctx := context.Background()

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	accessToken, refreshToken, err := svc.SignIn(ctx, dto.SignInRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	accessClaims, err := utils.ParseAndValidateToken(accessToken, "test-secret")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, accessClaims.ID, accessClaims.ExpiresAt.Time))

	newAccessToken, err := svc.RefreshAccessToken(ctx, refreshToken)
	require.NoError(t, err, "refresh token is not consulted against the revocation list")

	newClaims, err := utils.ParseAndValidateToken(newAccessToken, "test-secret")
	require.NoError(t, err)
	revoked, err := revoker.IsRevoked(ctx, newClaims.ID)
	require.NoError(t, err)
	assert.False(t, revoked, "freshly minted access token starts unrevoked")
}

func TestRefreshRejectsNonRefreshTokens(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})
	ctx := context.Background()

	accessToken, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeAccess, "test-secret", "dayboard-test", time.Minute)
	require.NoError(t, err)

	_, err = svc.RefreshAccessToken(ctx, accessToken)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = svc.RefreshAccessToken(ctx, "garbage")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	repo, _ := newUserStore()
	mailer := &fakeMailer{}
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), mailer)

	err := svc.ForgotPassword(context.Background(), "nobody@x.com")
	require.NoError(t, err, "unknown email must not surface an error")
	assert.Empty(t, mailer.sentTokens)
}

func TestForgotPasswordDeliversResetToken(t *testing.T) {
	repo, _ := newUserStore()
	mailer := &fakeMailer{}
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), mailer)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "a@x.com"))

	require.Len(t, mailer.sentTokens, 1)
	assert.Equal(t, []string{"a@x.com"}, mailer.sentTo)

	claims, err := utils.ParseAndValidateToken(mailer.sentTokens[0], "test-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeReset, claims.TokenType)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestResetPasswordUpdatesHashAndAllowsReplay(t *testing.T) {
	repo, users := newUserStore()
	mailer := &fakeMailer{}
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), mailer)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "a@x.com"))
	resetToken := mailer.sentTokens[0]

	require.NoError(t, svc.ResetPassword(ctx, resetToken, "newpass456"))
	assert.True(t, utils.CheckPasswordHash("newpass456", (*users)["a@x.com"].PasswordHash))

	// No consumed marker: the same token works again until it expires.
	require.NoError(t, svc.ResetPassword(ctx, resetToken, "replayedpass"))
	assert.True(t, utils.CheckPasswordHash("replayedpass", (*users)["a@x.com"].PasswordHash))
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})

	expired, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeReset, "test-secret", "dayboard-test", -time.Minute)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), expired, "newpass456")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestResetPasswordRejectsNonResetTokens(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})
	ctx := context.Background()

	accessToken, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeAccess, "test-secret", "dayboard-test", time.Minute)
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, accessToken, "newpass456")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	err = svc.ResetPassword(ctx, "garbage", "newpass456")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestResetPasswordUnknownUserIsNotFound(t *testing.T) {
	repo, _ := newUserStore()
	svc := services.NewAuthService(testConfig(), repo, newMemoryRevoker(), &fakeMailer{})

	resetToken, err := utils.GenerateToken(99, "gone@x.com", utils.TokenTypeReset, "test-secret", "dayboard-test", 15*time.Minute)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), resetToken, "newpass456")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
