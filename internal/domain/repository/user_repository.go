// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer matches
// on these instead of database-specific errors.
var (
	// ErrUserNotFound is returned when no user exists for the given key.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when Create hits the unique email constraint.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// Create must be an atomic insert-if-absent on email: the store's unique
// constraint is the only uniqueness discipline in the system.
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken when the email is
	// already registered; the inserted record's ID and timestamps are
	// written back into user.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
