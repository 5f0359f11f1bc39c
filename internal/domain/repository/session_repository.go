package repository

import (
	"context"

	"autoparts/internal/domain/entity"
)

// SessionRepository keeps the single device session across restarts.
type SessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session *entity.Session) error

	// Load returns the stored session, or ErrNoSession when nobody is signed in.
	Load(ctx context.Context) (*entity.Session, error)

	// Clear removes all session state.
	Clear(ctx context.Context) error
}
