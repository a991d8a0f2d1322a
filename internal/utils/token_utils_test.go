package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayboard/dayboard_backend/internal/utils"
)

const (
	testSecret = "test-secret"
	testIssuer = "dayboard-test"
)

func TestGenerateAndParseToken(t *testing.T) {
	tokenString, err := utils.GenerateToken(42, "a@x.com", utils.TokenTypeAccess, testSecret, testIssuer, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := utils.ParseAndValidateToken(tokenString, testSecret)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "token must carry a jti")
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestEachTokenGetsUniqueID(t *testing.T) {
	first, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeAccess, testSecret, testIssuer, time.Minute)
	require.NoError(t, err)
	second, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeAccess, testSecret, testIssuer, time.Minute)
	require.NoError(t, err)

	firstClaims, err := utils.ParseAndValidateToken(first, testSecret)
	require.NoError(t, err)
	secondClaims, err := utils.ParseAndValidateToken(second, testSecret)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tokenString, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeAccess, testSecret, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tokenString, err := utils.GenerateToken(1, "a@x.com", utils.TokenTypeAccess, testSecret, testIssuer, time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := utils.ParseAndValidateToken("not-a-token", testSecret)
	assert.Error(t, err)
}
