package auth

import (
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(issueRefresh bool) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.IssueRefreshToken = issueRefresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(true))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	email := "a@x.com"

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, email)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID.String(), accessClaims.Subject)
	assert.Equal(t, email, accessClaims.Email)
	assert.Equal(t, service.TokenKindAccess, accessClaims.Kind)

	parsedID, err := accessClaims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedID)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID.String(), refreshClaims.Subject)
	assert.Equal(t, email, refreshClaims.Email)
	assert.Equal(t, service.TokenKindRefresh, refreshClaims.Kind)
}

func TestJWTService_RefreshIssuanceToggle(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(false))
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.Empty(t, refreshToken)
}

func TestJWTService_GenerateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(true))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), "a@x.com")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, service.TokenKindAccess, claims.Kind)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(true))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
	assert.False(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_BadSignature(t *testing.T) {
	signer, err := NewJWTService(testConfig(true))
	require.NoError(t, err)

	otherCfg := testConfig(true)
	otherCfg.JWT.Secret = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := signer.GenerateTokens(uuid.New(), "a@x.com")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Sign with a zero TTL so the token is already past its expiry.
	svc := &jwtService{
		secret:       []byte("test_secret_key_very_long_for_testing"),
		accessTTL:    0,
		refreshTTL:   refreshTokenTTL,
		issueRefresh: true,
	}

	token, err := svc.GenerateAccessToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	time.Sleep(time.Second)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
	assert.False(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig(true)
	cfg.JWT.Secret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
