package usecase

import (
	"context"

	"autoparts/internal/domain/entity"
)

// SessionUsecase manages the single signed-in session of the device.
type SessionUsecase interface {
	// Login authenticates and replaces the stored session.
	Login(ctx context.Context, identifier, password string) (*entity.Session, error)

	// Current returns the stored session or ErrNoSession.
	Current(ctx context.Context) (*entity.Session, error)

	// Logout drops all session state.
	Logout(ctx context.Context) error
}
