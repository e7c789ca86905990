// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the canonical account record. The PasswordHash field is write-once
// at signup and must never be serialized or logged; callers that hand user
// data to the outside world go through the Identity projection instead.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user, assigned by the store.
	Email        string    // The user's unique login identifier.
	FirstName    string    // Display name; defaults to the local part of the email at signup.
	LastName     string    // Display name; defaults to empty at signup.
	PasswordHash string    // bcrypt-derived credential. Never leaves the process.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the public, read-only projection of a User. It structurally
// excludes the password hash so no response path can leak it.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity returns the hash-free projection of the user.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

// DefaultFirstName derives the signup default for an omitted first name:
// the local part of the email, i.e. everything before the first '@'.
func DefaultFirstName(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}
