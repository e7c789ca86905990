package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user-profile business operations.
type UserUsecase interface {
	// CurrentUser resolves a user ID from a verified token into the account's
	// public identity.
	CurrentUser(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
}
