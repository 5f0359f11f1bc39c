package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"autoparts/config"
	"autoparts/internal/domain/entity"
	"autoparts/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Storage: &config.StorageConfig{
			Path:        "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			BusyTimeout: time.Second,
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

// openTestDB returns an empty private in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(newTestConfig(), newTestLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// openSeededDB returns a store opened at the latest version with cleartext passwords.
func openSeededDB(t *testing.T) (*gorm.DB, *schemaManager) {
	t.Helper()

	db := openTestDB(t)
	sm := newSchemaManager(db, auth.NewPlainHasher(), newTestLogger())
	require.NoError(t, sm.Open(context.Background(), LatestVersion))

	return db, sm
}

func newTestProduct(article, name string, price int64) *entity.Product {
	return &entity.Product{
		Name:           name,
		Article:        article,
		Brand:          "Bosch",
		Price:          decimal.NewFromInt(price),
		Description:    "test part",
		Category:       "Фильтры",
		VINNumbers:     "A1,B2",
		CompatibleCars: "VW Golf, Audi A3",
	}
}
