package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"autoparts/config"
	"autoparts/internal/domain/lifecycle"
	"autoparts/internal/domain/repository"
	"autoparts/internal/infra/auth"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/infra/persistence/sqlite"
	"autoparts/internal/usecase"
	"autoparts/internal/usecase/impl"
	"autoparts/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Supported subcommands:
// - migrate: open the store and upgrade it to the configured schema version
// - status:  print the schema version and the columns of every table
// - rebuild: drop everything and reseed at the latest version
// - search:  search the catalog
// - orders:  list every order with its status

// commandDeps is what the subcommands need from the application graph.
type commandDeps struct {
	fx.In

	Config  *config.Config
	Schema  repository.SchemaManager
	Catalog usecase.CatalogUsecase
	Orders  repository.OrderRepository
	Logger  *slog.Logger
}

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)
	rebuildCmd := flag.NewFlagSet("rebuild", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	ordersCmd := flag.NewFlagSet("orders", flag.ExitOnError)

	searchQuery := searchCmd.String("q", "", "Text to look for in name, article, brand, description and compatible cars")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var run func(ctx context.Context, deps commandDeps) error
	switch os.Args[1] {
	case "migrate":
		_ = migrateCmd.Parse(os.Args[2:])
		run = runMigrate
	case "status":
		_ = statusCmd.Parse(os.Args[2:])
		run = runStatus
	case "rebuild":
		_ = rebuildCmd.Parse(os.Args[2:])
		run = runRebuild
	case "search":
		_ = searchCmd.Parse(os.Args[2:])
		run = func(ctx context.Context, deps commandDeps) error {
			return runSearch(ctx, deps, *searchQuery)
		}
	case "orders":
		_ = ordersCmd.Parse(os.Args[2:])
		run = runOrders
	default:
		printUsage()
		os.Exit(1)
	}

	if err := execute(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute starts the application, which opens and upgrades the store, runs one command and stops.
func execute(run func(ctx context.Context, deps commandDeps) error) error {
	var deps commandDeps

	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(func(d commandDeps) { deps = d }),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	ctx := logs.StartOperation(context.Background(), deps.Logger, os.Args[1])
	started := time.Now()
	runErr := run(ctx, deps)
	if runErr != nil {
		logs.GetLoggerOrDefault(ctx, deps.Logger).Error("Command failed", slog.Any("error", runErr))
	} else {
		logs.GetLoggerOrDefault(ctx, deps.Logger).Debug("Command finished", slog.String("elapsed", util.FormatDuration(time.Since(started))))
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewUserRepository,
			sqlite.NewProductRepository,
			sqlite.NewCartRepository,
			sqlite.NewOrderRepository,
			sqlite.NewSessionRepository,
			sqlite.NewTransactionManager,
			sqlite.NewSchemaManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
		),
	)
}

func printUsage() {
	fmt.Println("Usage: autoparts <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate   Open the store and upgrade it to the configured schema version")
	fmt.Println("  status    Print the schema version and table columns")
	fmt.Println("  rebuild   Drop all data and reseed at the latest schema version")
	fmt.Println("  search    Search the catalog (-q text)")
	fmt.Println("  orders    List all orders")
}
