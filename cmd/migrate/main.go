package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"outside/config"
	logs "outside/internal/infra/log"
	"outside/internal/infra/persistence/gormstore"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateFlags struct {
	dryRun bool
}

func main() {
	var flags migrateFlags
	pflag.BoolVar(&flags.dryRun, "dry-run", false, "List the managed tables without touching the database")
	pflag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			gormstore.New,
		),
		fx.Supply(flags),
		fx.Invoke(runMigrate),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMigrate(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger, flags migrateFlags) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if flags.dryRun {
				tables, err := gormstore.TableNames(db)
				if err != nil {
					return err
				}
				fmt.Println(strings.Join(tables, "\n"))

				return nil
			}

			if err := gormstore.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Database schema is up to date")

			return nil
		},
	})
}
