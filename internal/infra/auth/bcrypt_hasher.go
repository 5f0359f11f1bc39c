// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost builds a bcrypt hasher with an explicit work factor.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// Stores created before hashing hold cleartext; those values are compared directly.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}
	if !isBcryptHash(hash) {
		return subtle.ConstantTimeCompare([]byte(password), []byte(hash)) == 1
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// NeedsRehash is true for cleartext values left by older stores.
func (h *bcryptHasher) NeedsRehash(hash string) bool {
	return !isBcryptHash(hash)
}

func isBcryptHash(hash string) bool {
	_, err := bcrypt.Cost([]byte(hash))

	return err == nil
}
