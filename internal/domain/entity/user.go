// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a registered storefront account.
type User struct {
	ID           int64      // Generated identifier.
	Email        string     // Unique login identifier.
	Phone        string     // Unique login identifier, stored normalised (see NormalizePhone).
	PasswordHash string     // Opaque credential produced by the configured PasswordHasher.
	Name         string     // Display name.
	Role         Role       // Access level; cached into the session at login.
	Address      string     // Optional default delivery address.
	AvatarURL    string     // Optional avatar reference.
	CreatedAt    time.Time  // When the account was registered.
	LastLoginAt  *time.Time // Last successful authentication, nil if never.
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
