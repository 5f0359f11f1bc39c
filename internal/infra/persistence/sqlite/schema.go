package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autoparts/config"
	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// LatestVersion is the newest schema this package can create.
const LatestVersion = config.LatestSchemaVersion

// legacyBaseVersion is assumed for stores that have tables but no stamped version.
const legacyBaseVersion = 1

// migrationStep moves the schema from version-1 to version. Steps must be safe to run twice.
type migrationStep func(ctx context.Context, tx *gorm.DB) error

// migration is one numbered upgrade step.
type migration struct {
	apply migrationStep

	// dataOnly steps rewrite reference data and leave the table layout alone.
	// When one fails it is rolled back and skipped; the store is never rebuilt for it.
	dataOnly bool
}

// managedModels lists every table the store owns, in creation order.
func managedModels() []any {
	return []any{
		&model.UserModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.CartItemModel{},
		&model.SessionModel{},
	}
}

type schemaManager struct {
	db     *gorm.DB
	hasher service.PasswordHasher
	logger *slog.Logger
	steps  map[int]migration
}

// SchemaParams defines the required parameters
type SchemaParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Hasher service.PasswordHasher
	Config *config.Config
	Logger *slog.Logger
}

// NewSchemaManager opens the store at the configured version when the application starts.
func NewSchemaManager(params SchemaParams) repository.SchemaManager {
	sm := newSchemaManager(params.DB, params.Hasher, params.Logger)

	target := LatestVersion
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.SchemaVersion > 0 {
		target = params.Config.Storage.SchemaVersion
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sm.Open(ctx, target)
		},
	})

	return sm
}

// NewSchema returns a schema manager without lifecycle hooks, for tools and tests that open the store themselves.
func NewSchema(db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) repository.SchemaManager {
	return newSchemaManager(db, hasher, logger)
}

func newSchemaManager(db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) *schemaManager {
	sm := &schemaManager{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
	sm.steps = map[int]migration{
		6: {apply: sm.addCheckoutColumns},
		8: {apply: sm.replaceCatalog, dataOnly: true},
		9: {apply: sm.addProfileAndInventory},
	}

	return sm
}

func (sm *schemaManager) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, sm.logger)
}

// Open creates and seeds an empty store, or upgrades an existing one to targetVersion.
func (sm *schemaManager) Open(ctx context.Context, targetVersion int) error {
	if targetVersion < 1 || targetVersion > LatestVersion {
		return domainerrors.ErrSchemaMigrationFailed.
			WithDetails(fmt.Sprintf("version %d outside 1..%d", targetVersion, LatestVersion)).
			WrapMessage("open store")
	}

	if !sm.db.WithContext(ctx).Migrator().HasTable(&model.UserModel{}) {
		sm.log(ctx).Info("Creating store", slog.Int("version", targetVersion))

		return sm.rebuild(ctx, targetVersion)
	}

	current, err := sm.Version(ctx)
	if err != nil {
		return err
	}
	if current == 0 {
		current = legacyBaseVersion
	}

	switch {
	case current < targetVersion:
		return sm.Upgrade(ctx, current, targetVersion)
	case current > targetVersion:
		return domainerrors.ErrSchemaMigrationFailed.
			WithDetails(fmt.Sprintf("stored version %d is newer than %d", current, targetVersion)).
			WrapMessage("open store")
	default:
		return sm.ensureSupportTables(sm.db.WithContext(ctx))
	}
}

// Upgrade runs each step in (from, to] in its own transaction and stamps the version after it.
// A failed data-only step is rolled back, logged and skipped. Any other failed step rebuilds
// the store from scratch at version to.
func (sm *schemaManager) Upgrade(ctx context.Context, from, to int) error {
	if from >= to {
		return nil
	}
	if to > LatestVersion {
		return domainerrors.ErrSchemaMigrationFailed.
			WithDetails(fmt.Sprintf("version %d is unknown", to)).
			WrapMessage("upgrade store")
	}

	logger := sm.log(ctx)
	logger.Info("Upgrading store", slog.Int("from", from), slog.Int("to", to))

	if err := sm.ensureSupportTables(sm.db.WithContext(ctx)); err != nil {
		return err
	}

	for version := from + 1; version <= to; version++ {
		step := sm.steps[version]

		err := sm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if step.apply != nil {
				if err := step.apply(ctx, tx); err != nil {
					return err
				}
			}

			return setVersion(tx, version)
		})
		if err != nil && step.dataOnly {
			logger.Warn("Data migration step failed, keeping existing data",
				slog.Int("version", version),
				slog.String("error", err.Error()),
			)

			if err := setVersion(sm.db.WithContext(ctx), version); err != nil {
				return domainerrors.ErrSchemaMigrationFailed.WithDetails(err.Error()).WrapMessage("upgrade store")
			}

			continue
		}
		if err != nil {
			logger.Error("Migration step failed, rebuilding store",
				slog.Int("version", version),
				slog.String("error", err.Error()),
			)

			if rebuildErr := sm.rebuild(ctx, to); rebuildErr != nil {
				return errors.Wrapf(rebuildErr, "rebuild after failed migration to %d", version)
			}

			return nil
		}
	}

	return nil
}

// Rebuild drops every table and recreates a seeded store at LatestVersion.
func (sm *schemaManager) Rebuild(ctx context.Context) error {
	return sm.rebuild(ctx, LatestVersion)
}

func (sm *schemaManager) rebuild(ctx context.Context, version int) error {
	err := sm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		migrator := tx.Migrator()

		if err := migrator.DropTable(model.LegacyCartTable); err != nil {
			return errors.Wrap(err, "drop legacy cart")
		}
		if err := migrator.DropTable(managedModels()...); err != nil {
			return errors.Wrap(err, "drop tables")
		}
		if err := migrator.CreateTable(managedModels()...); err != nil {
			return errors.Wrap(err, "create tables")
		}
		if err := sm.seed(ctx, tx); err != nil {
			return err
		}

		return setVersion(tx, version)
	})
	if err != nil {
		return domainerrors.ErrSchemaMigrationFailed.WithDetails(err.Error()).WrapMessage("rebuild store")
	}

	sm.log(ctx).Info("Store rebuilt", slog.Int("version", version))

	return nil
}

// Version reads the stamped schema version.
func (sm *schemaManager) Version(ctx context.Context) (int, error) {
	var version int
	if err := sm.db.WithContext(ctx).Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return 0, translateError(err, nil, nil, "failed to read schema version")
	}

	return version, nil
}

// Describe maps every table to its column names.
func (sm *schemaManager) Describe(ctx context.Context) (map[string][]string, error) {
	migrator := sm.db.WithContext(ctx).Migrator()

	tables, err := migrator.GetTables()
	if err != nil {
		return nil, translateError(err, nil, nil, "failed to list tables")
	}

	out := make(map[string][]string, len(tables))
	for _, table := range tables {
		if table == "sqlite_sequence" {
			continue
		}

		columnTypes, err := migrator.ColumnTypes(table)
		if err != nil {
			return nil, translateError(err, nil, nil, "failed to describe "+table)
		}

		columns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			columns = append(columns, ct.Name())
		}
		out[table] = columns
	}

	return out, nil
}

// ensureSupportTables creates the tables that older stores never had.
func (sm *schemaManager) ensureSupportTables(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, m := range []any{&model.CartItemModel{}, &model.SessionModel{}} {
		if migrator.HasTable(m) {
			continue
		}
		if err := migrator.CreateTable(m); err != nil {
			return domainerrors.ErrSchemaMigrationFailed.WithDetails(err.Error()).WrapMessage("create support table")
		}
	}

	return nil
}

func setVersion(tx *gorm.DB, version int) error {
	// PRAGMA does not take bound parameters.
	if err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)).Error; err != nil {
		return errors.Wrapf(err, "stamp schema version %d", version)
	}

	return nil
}

func addMissingColumns(tx *gorm.DB, value any, fields []string) error {
	migrator := tx.Migrator()
	for _, field := range fields {
		if migrator.HasColumn(value, field) {
			continue
		}
		if err := migrator.AddColumn(value, field); err != nil {
			return errors.Wrapf(err, "add column %s", field)
		}
	}

	return nil
}

// addCheckoutColumns brings orders to version 6 without touching existing rows.
func (sm *schemaManager) addCheckoutColumns(_ context.Context, tx *gorm.DB) error {
	return addMissingColumns(tx, &model.OrderModel{}, model.CheckoutOrderColumns)
}

// replaceCatalog swaps the whole catalog for the reference one. Orders keep their own snapshots.
func (sm *schemaManager) replaceCatalog(ctx context.Context, tx *gorm.DB) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "clear catalog")
	}

	return sm.seedCatalog(ctx, tx)
}

// addProfileAndInventory adds the optional user and product columns and moves the legacy per-user cart.
func (sm *schemaManager) addProfileAndInventory(ctx context.Context, tx *gorm.DB) error {
	if err := addMissingColumns(tx, &model.ProductModel{}, model.InventoryProductColumns); err != nil {
		return err
	}
	if err := addMissingColumns(tx, &model.UserModel{}, []string{"Address", "CreatedAt", "LastLoginAt", "AvatarURL"}); err != nil {
		return err
	}

	return sm.migrateLegacyCart(ctx, tx)
}

type legacyCartRow struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

func (sm *schemaManager) migrateLegacyCart(ctx context.Context, tx *gorm.DB) error {
	migrator := tx.Migrator()
	if !migrator.HasTable(model.LegacyCartTable) {
		return nil
	}

	var rows []legacyCartRow
	if err := tx.Table(model.LegacyCartTable).Where("quantity > 0").Find(&rows).Error; err != nil {
		return errors.Wrap(err, "read legacy cart")
	}

	cart := NewCartRepository(tx)
	for _, row := range rows {
		if err := cart.AddItem(ctx, entity.UserCartOwner(row.UserID), row.ProductID, row.Quantity); err != nil {
			return err
		}
	}

	if err := migrator.DropTable(model.LegacyCartTable); err != nil {
		return errors.Wrap(err, "drop legacy cart")
	}

	sm.log(ctx).Info("Legacy cart moved", slog.Int("lines", len(rows)))

	return nil
}

func (sm *schemaManager) seed(ctx context.Context, tx *gorm.DB) error {
	now := model.NewTimestamp(time.Now())

	for _, u := range seedUsers {
		hash, err := sm.hasher.Hash(u.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()).WrapMessage("seed users")
		}

		userM := &model.UserModel{
			Email:     u.Email,
			Phone:     u.Phone,
			Password:  hash,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: now,
		}
		if err := tx.Create(userM).Error; err != nil {
			return errors.Wrapf(err, "seed user %s", u.Email)
		}
	}

	return sm.seedCatalog(ctx, tx)
}

// seedCatalog writes the reference catalog. Stores still missing the inventory columns get the legacy columns only.
func (sm *schemaManager) seedCatalog(ctx context.Context, tx *gorm.DB) error {
	catalog := referenceCatalog()

	query := tx
	if tx.Migrator().HasColumn(&model.ProductModel{}, "CreatedAt") {
		now := model.NewTimestamp(time.Now())
		for _, p := range catalog {
			p.CreatedAt = now
		}
	} else {
		query = tx.Select(model.LegacyProductColumns)
	}

	if err := query.CreateInBatches(catalog, productBatchSize).Error; err != nil {
		return errors.Wrap(err, "seed catalog")
	}

	sm.log(ctx).Debug("Catalog seeded", slog.Int("products", len(catalog)))

	return nil
}
