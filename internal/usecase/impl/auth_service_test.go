package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	}
	userID := uuid.New()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.On("GenerateTokens", userID, input.Email).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.Tokens.AccessToken)
	assert.Equal(t, "refresh_token", output.Tokens.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	// A missing first name falls back to the email's local part.
	assert.Equal(t, "jane", output.User.FirstName)
	assert.Empty(t, output.User.LastName)
}

func TestAuthService_Signup_ExplicitNameIsKept(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Email:     "jane@example.com",
		Password:  "Password123!",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "Jane", user.FirstName)
			assert.Equal(t, "Doe", user.LastName)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.On("GenerateTokens", mock.Anything, input.Email).
		Return("access_token", "", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Jane", output.User.FirstName)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Credentials taken", appErr.Message())
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	}

	fx.hasher.On("Hash", input.Password).Return("", errors.New("boom"))

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSignupFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "stored_hash",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(user, nil)
	fx.hasher.On("Check", input.Password, "stored_hash").Return(true)
	fx.tokenService.On("GenerateTokens", user.ID, user.Email).
		Return("access_token", "refresh_token", nil)

	tokens, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", tokens.AccessToken)
	assert.Equal(t, "refresh_token", tokens.RefreshToken)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_FailureIsUniform(t *testing.T) {
	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	}

	collectMessage := func(t *testing.T, err error) string {
		t.Helper()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrLoginFailed))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))

		return appErr.Message()
	}

	fxUnknown := createTestAuthService(t)
	fxUnknown.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	// The throwaway hash check keeps this path from returning early.
	fxUnknown.hasher.On("Check", input.Password, mock.AnythingOfType("string")).Return(false)

	_, errUnknown := fxUnknown.service.Login(ctx, input)
	unknownMsg := collectMessage(t, errUnknown)

	fxMismatch := createTestAuthService(t)
	fxMismatch.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email, PasswordHash: "stored_hash"}, nil)
	fxMismatch.hasher.On("Check", input.Password, "stored_hash").Return(false)

	_, errMismatch := fxMismatch.service.Login(ctx, input)
	mismatchMsg := collectMessage(t, errMismatch)

	assert.Equal(t, unknownMsg, mismatchMsg)
	assert.Equal(t, "Unable to login", mismatchMsg)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jane@example.com"}
	claims := &service.Claims{
		Email: user.Email,
		Kind:  service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID.String(),
		},
	}

	fx.tokenService.On("ValidateToken", "refresh_token").Return(claims, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.tokenService.On("GenerateAccessToken", userID, user.Email).
		Return("new_access_token", nil)

	tokens, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", tokens.AccessToken)
	// Refresh does not rotate the refresh token.
	assert.Empty(t, tokens.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.On("ValidateToken", "garbage").
		Return(nil, errors.WithStack(service.ErrTokenInvalid))

	tokens, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshFailed))
}

// An access token must not pass for a refresh token.
func TestAuthService_RefreshToken_WrongKind(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.Claims{
		Email: "jane@example.com",
		Kind:  service.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: uuid.New().String(),
		},
	}

	fx.tokenService.On("ValidateToken", "access_token").Return(claims, nil)

	tokens, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "access_token"})

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshFailed))
}

func TestAuthService_RefreshToken_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{
		Email: "gone@example.com",
		Kind:  service.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID.String(),
		},
	}

	fx.tokenService.On("ValidateToken", "refresh_token").Return(claims, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	tokens, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "refresh_token"})

	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshFailed))
}
