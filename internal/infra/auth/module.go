package auth

import (
	"autoparts/config"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
)

// NewPasswordHasher picks the hasher named by auth.passwordScheme.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	scheme, cost := config.PasswordSchemeBcrypt, 0
	if cfg != nil && cfg.Auth != nil {
		scheme, cost = cfg.Auth.PasswordScheme, cfg.Auth.BcryptCost
	}

	switch scheme {
	case config.PasswordSchemeBcrypt, "":
		return NewBcryptHasherWithCost(cost), nil
	case config.PasswordSchemePlain:
		return NewPlainHasher(), nil
	default:
		return nil, errors.Errorf("unknown password scheme: %s", scheme)
	}
}
