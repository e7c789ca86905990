package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFirstName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@example.com", "jane"},
		{"j.doe+tag@example.com", "j.doe+tag"},
		{"weird@@example.com", "weird"},
		{"no-at-sign", "no-at-sign"},
		{"@example.com", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultFirstName(tt.email), tt.email)
	}
}

func TestUser_Identity(t *testing.T) {
	now := time.Now()
	user := &User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "secret_hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	identity := user.Identity()

	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, user.FirstName, identity.FirstName)
	assert.Equal(t, user.LastName, identity.LastName)
	assert.Equal(t, user.CreatedAt, identity.CreatedAt)
}
