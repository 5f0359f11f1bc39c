package auth

import (
	"crypto/subtle"

	"autoparts/internal/domain/service"
)

// plainHasher stores passwords as given. It exists for stores created with cleartext credentials.
type plainHasher struct{}

// NewPlainHasher returns a PasswordHasher that does not transform the password.
func NewPlainHasher() service.PasswordHasher {
	return plainHasher{}
}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Check(password, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(hash)) == 1
}

func (plainHasher) NeedsRehash(string) bool {
	return false
}
