// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/domain/service"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Both token kinds are HS256-signed with the same server-held secret; the
// "type" claim keeps them from being interchangeable.
type jwtService struct {
	secret       []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
	issueRefresh bool
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a fatal misconfiguration and fails startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:       []byte(cfg.JWT.Secret),
		accessTTL:    accessTokenTTL,
		refreshTTL:   refreshTokenTTL,
		issueRefresh: cfg.JWT.IssueRefreshToken,
	}, nil
}

// GenerateTokens creates a new access token and, when pair issuance is
// enabled, a refresh token bound to the same identity.
func (s *jwtService) GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, email, s.accessTTL, service.TokenKindAccess)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	if !s.issueRefresh {
		return accessToken, "", nil
	}

	refreshToken, err = s.generateToken(userID, email, s.refreshTTL, service.TokenKindRefresh)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken creates only a new access token for the given identity.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	token, err := s.generateToken(userID, email, s.accessTTL, service.TokenKindAccess)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// ValidateToken checks the signature and expiry of a token string and returns
// its claims. Expired tokens map to service.ErrTokenExpired, everything else
// to service.ErrTokenInvalid, so callers can tell the two kinds apart.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, email string, ttl time.Duration, kind string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(), // Subject (who the token is for)
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}
