package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"autoparts/config"
	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
	"autoparts/internal/infra/auth"
	"autoparts/internal/infra/persistence/sqlite"
	"autoparts/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testStack is every use case wired onto one private in-memory store.
type testStack struct {
	db       *gorm.DB
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	catalog  usecase.CatalogUsecase
	cart     usecase.CartUsecase
	orders   usecase.OrderUsecase
}

// newTestStack seeds the store with cleartext passwords and hands hasher to the services.
func newTestStack(t *testing.T, hasher service.PasswordHasher) *testStack {
	t.Helper()

	cfg := &config.Config{
		Storage: &config.StorageConfig{
			Path:        "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			BusyTimeout: time.Second,
		},
	}
	cfg.ApplyDefaults()
	logger := newDiscardLogger()

	db, err := sqlite.Open(cfg, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, sqlite.NewSchema(db, auth.NewPlainHasher(), logger).Open(context.Background(), sqlite.LatestVersion))

	if hasher == nil {
		hasher = auth.NewPlainHasher()
	}
	txManager := sqlite.NewTransactionManager(db)
	userRepo := sqlite.NewUserRepository(db)

	users := NewUserService(UserServiceParams{TxManager: txManager, UserRepo: userRepo, Hasher: hasher, Logger: logger})

	return &testStack{
		db:       db,
		users:    users,
		sessions: NewSessionService(SessionServiceParams{UserUsecase: users, SessionRepo: sqlite.NewSessionRepository(db), Logger: logger}),
		catalog:  NewCatalogService(CatalogServiceParams{ProductRepo: sqlite.NewProductRepository(db), Logger: logger}),
		cart:     NewCartService(CartServiceParams{TxManager: txManager, CartRepo: sqlite.NewCartRepository(db), Logger: logger}),
		orders:   NewOrderService(OrderServiceParams{TxManager: txManager, OrderRepo: sqlite.NewOrderRepository(db), Logger: logger}),
	}
}

func (s *testStack) login(t *testing.T, identifier, password string) *entity.Session {
	t.Helper()

	session, err := s.sessions.Login(context.Background(), identifier, password)
	require.NoError(t, err)

	return session
}

func (s *testStack) adminSession(t *testing.T) *entity.Session {
	return s.login(t, "admin@autoparts.com", "admin123")
}

func (s *testStack) userSession(t *testing.T) *entity.Session {
	return s.login(t, "user@example.com", "user123")
}

func (s *testStack) createProduct(t *testing.T, article string, price int64) *entity.Product {
	t.Helper()

	product, err := s.catalog.CreateProduct(context.Background(), s.adminSession(t), &usecase.ProductInput{
		Name:    "Деталь " + article,
		Article: article,
		Brand:   "Bosch",
		Price:   decimal.NewFromInt(price),
	})
	require.NoError(t, err)

	return product
}
