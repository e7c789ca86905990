// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
//
// Failures inside each operation collapse onto a single coarse domain error
// (signup, login, refresh). The response never reveals which step failed, so
// a caller probing for registered emails learns nothing; the precise cause
// still reaches the logs.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and signs its first tokens.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrSignupFailed.WrapMessage("failed to hash password")
	}

	firstName := input.FirstName
	if firstName == "" {
		firstName = entity.DefaultFirstName(input.Email)
	}

	user := &entity.User{
		Email:        input.Email,
		FirstName:    firstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
	}

	// The repository's insert is atomic on the email constraint, so two
	// concurrent signups for the same address cannot both succeed.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

			return nil, domainerrors.ErrCredentialsTaken.WrapMessage("email already registered")
		}

		srv.log(ctx).Error("Failed to persist user during signup", slog.Any("error", err))

		return nil, domainerrors.ErrSignupFailed.WrapMessage("failed to persist user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to sign tokens during signup", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrSignupFailed.WrapMessage("failed to sign tokens")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return &usecase.SignupOutput{
		Tokens: &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		User:   user.Identity(),
	}, nil
}

// Login verifies credentials and signs a fresh token pair.
// Unknown email and wrong password both collapse onto the same error: the
// password check runs against a throwaway hash when the account is missing, so
// the two paths cost roughly the same.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPair, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))
		}
		srv.hasher.Check(input.Password, dummyHash)

		return nil, domainerrors.ErrLoginFailed.WrapMessage("unknown email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("password mismatch")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to sign tokens during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("failed to sign tokens")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken exchanges a valid refresh token for a new access token.
// The presented token must carry the refresh kind and its subject must still
// resolve to an existing account. No new refresh token is minted; the client
// keeps using the original until it expires.
func (srv *authService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected, token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshFailed.WrapMessage("token validation failed")
	}

	if claims.Kind != service.TokenKindRefresh {
		srv.log(ctx).Warn("Refresh rejected, wrong token kind", slog.String("kind", claims.Kind))

		return nil, domainerrors.ErrRefreshFailed.WrapMessage("wrong token kind")
	}

	userID, err := claims.UserID()
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected, malformed subject", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshFailed.WrapMessage("malformed subject")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to look up user during refresh", slog.Any("error", err))
		}

		return nil, domainerrors.ErrRefreshFailed.WrapMessage("unknown user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token during refresh", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrRefreshFailed.WrapMessage("failed to sign access token")
	}

	srv.log(ctx).Debug("Refresh completed", slog.Any("userID", user.ID))

	return &usecase.TokenPair{AccessToken: accessToken}, nil
}

// dummyHash is a bcrypt hash of an unguessable throwaway value, checked when
// login hits an unknown email so that path is not measurably faster than a
// password mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
