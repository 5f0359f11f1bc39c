package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the signed-in state of the device. It is created at login, cleared at logout
// and handed explicitly to every operation that needs the current user or role.
type Session struct {
	ID        uuid.UUID
	LoggedIn  bool
	User      SessionUser // Snapshot taken at login.
	CreatedAt time.Time
}

// SessionUser is the user snapshot cached in a session. It is not refreshed from the store.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// NewSession snapshots the user into a fresh signed-in session.
func NewSession(user *User, now time.Time) *Session {
	return &Session{
		ID:       uuid.New(),
		LoggedIn: true,
		User: SessionUser{
			ID:    user.ID,
			Email: user.Email,
			Phone: user.Phone,
			Name:  user.Name,
			Role:  user.Role,
		},
		CreatedAt: now,
	}
}

// IsAdmin reads only the cached role, so a role change takes effect at the next login.
func (s *Session) IsAdmin() bool {
	return s != nil && s.LoggedIn && s.User.Role == RoleAdmin
}

// IsAuthenticated reports whether somebody is signed in.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.LoggedIn
}

// CartOwner returns the cart this session shops with.
func (s *Session) CartOwner() CartOwner {
	if !s.IsAuthenticated() {
		return LocalCartOwner
	}

	return UserCartOwner(s.User.ID)
}
