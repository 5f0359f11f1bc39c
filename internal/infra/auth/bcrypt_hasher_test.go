package auth

import (
	"testing"

	"autoparts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "admin123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "user123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("user124", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CleartextFromOlderStores(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{name: "matching cleartext", password: "user123", stored: "user123", want: true},
		{name: "wrong cleartext", password: "user124", stored: "user123", want: false},
		{name: "empty stored value", password: "", stored: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Check(tt.password, tt.stored))
		})
	}

	hash, err := hasher.Hash("user123")
	require.NoError(t, err)
	assert.True(t, hasher.NeedsRehash("user123"))
	assert.False(t, hasher.NeedsRehash(hash))
	assert.False(t, NewPlainHasher().NeedsRehash("user123"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher, ok := NewBcryptHasherWithCost(99).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestPlainHasher(t *testing.T) {
	hasher := NewPlainHasher()

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin123", hash)
	assert.True(t, hasher.Check("admin123", hash))
	assert.False(t, hasher.Check("admin1234", hash))
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		wantErr bool
		plain   bool
	}{
		{name: "bcrypt", scheme: config.PasswordSchemeBcrypt},
		{name: "empty defaults to bcrypt", scheme: ""},
		{name: "plain", scheme: config.PasswordSchemePlain, plain: true},
		{name: "unknown", scheme: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Auth: &config.AuthConfig{PasswordScheme: tt.scheme, BcryptCost: bcrypt.MinCost}}

			hasher, err := NewPasswordHasher(cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			hash, err := hasher.Hash("pw")
			require.NoError(t, err)
			assert.Equal(t, tt.plain, hash == "pw")
			assert.True(t, hasher.Check("pw", hash))
		})
	}
}
