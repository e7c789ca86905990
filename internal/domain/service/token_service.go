package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds carried in the "type" claim. An access token proves identity on
// protected endpoints; a refresh token is only good for minting new access
// tokens.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// Verification failure kinds. Callers can distinguish an expired-but-well-formed
// token from a malformed or tampered one; the credential service collapses both
// into one client-facing error.
var (
	// ErrTokenExpired marks a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid marks a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims embedded in issued tokens.
// The subject is the user ID.
type Claims struct {
	Email string `json:"email"`
	Kind  string `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the user's ID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for signing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token for the given identity and,
	// when pair issuance is enabled, a refresh token. refreshToken is empty
	// when pair issuance is disabled.
	GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only a new access token. Used by the
	// refresh flow, which never rotates the refresh token.
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	// Returns ErrTokenExpired or ErrTokenInvalid (possibly wrapped).
	ValidateToken(tokenString string) (*Claims, error)
}
