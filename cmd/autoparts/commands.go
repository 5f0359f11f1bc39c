package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	logs "autoparts/internal/infra/log"
	"autoparts/internal/util"
)

// runMigrate has nothing left to do: the store was opened at the configured version during start.
func runMigrate(ctx context.Context, deps commandDeps) error {
	version, err := deps.Schema.Version(ctx)
	if err != nil {
		return err
	}

	logs.GetLoggerOrDefault(ctx, deps.Logger).Info("Store is up to date", slog.Int("version", version))

	return nil
}

func runStatus(ctx context.Context, deps commandDeps) error {
	version, err := deps.Schema.Version(ctx)
	if err != nil {
		return err
	}

	tables, err := deps.Schema.Describe(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("schema version: %d\n", version)
	if path := util.StoreFilePath(deps.Config.Storage.Path); path != "" {
		if size, err := util.FileSize(path); err == nil {
			fmt.Printf("store file: %s (%s)\n", path, util.FormatBytes(size))
		}
	}
	for _, name := range names {
		fmt.Printf("%-12s %s\n", name, strings.Join(tables[name], ", "))
	}

	return nil
}

func runRebuild(ctx context.Context, deps commandDeps) error {
	if err := deps.Schema.Rebuild(ctx); err != nil {
		return err
	}

	logs.GetLoggerOrDefault(ctx, deps.Logger).Warn("Store rebuilt, all orders and carts were dropped")

	return nil
}

func runSearch(ctx context.Context, deps commandDeps, query string) error {
	products, err := deps.Catalog.Search(ctx, query)
	if err != nil {
		return err
	}

	for _, p := range products {
		fmt.Printf("%-10s %-40s %-12s %10s\n", p.Article, p.Name, p.Brand, p.Price.StringFixed(2))
	}
	fmt.Printf("%d found\n", len(products))

	return nil
}

func runOrders(ctx context.Context, deps commandDeps) error {
	orders, err := deps.Orders.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		fmt.Printf("#%-5d %s  %-12s %10s  %s <%s>\n",
			o.ID, o.DateString(), o.Status.Label(), o.TotalAmount.StringFixed(2), o.UserName, o.UserEmail)
	}
	fmt.Printf("%d orders\n", len(orders))

	return nil
}
