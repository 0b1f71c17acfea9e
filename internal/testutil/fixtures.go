package testutil

import (
	"time"

	"github.com/dtroode/jobmarket-server/internal/model"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// MakeUser returns a password-based user with stable timestamps.
func MakeUser(id int64, email string) model.User {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return model.User{
		ID:           id,
		Name:         "User " + email,
		Email:        email,
		PasswordHash: Ptr("$2a$10$digest"),
		Role:         model.RoleUser,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
