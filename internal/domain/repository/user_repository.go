// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"autoparts/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by normalised phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// ExistsByEmail reports whether any account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhone reports whether any account uses the phone.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// Create persists a new user and sets its generated ID.
	// A duplicate email or phone yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile replaces email, phone and name. When passwordHash is non-nil the credential is replaced too.
	UpdateProfile(ctx context.Context, user *entity.User, passwordHash *string) error

	// UpdatePassword replaces the stored credential only.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// TouchLastLogin stamps a successful authentication.
	TouchLastLogin(ctx context.Context, id int64) error

	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int64, error)
}
