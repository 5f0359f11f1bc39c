// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"autoparts/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

// UpdateProfileInput replaces the contact fields of an account.
type UpdateProfileInput struct {
	UserID int64  `validate:"gt=0"`
	Email  string `validate:"required,email"`
	Phone  string `validate:"required"`
	Name   string `validate:"required"`
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Authenticate accepts an email or a phone number in any common notation.
	Authenticate(ctx context.Context, identifier, password string) (*entity.User, error)

	UpdateProfile(ctx context.Context, input *UpdateProfileInput) error
	UpdateProfileWithPassword(ctx context.Context, input *UpdateProfileInput, password string) error
	CheckPassword(ctx context.Context, userID int64, password string) (bool, error)
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
}
