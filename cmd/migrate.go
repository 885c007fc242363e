package main

import (
	"context"
	"database/sql"
	"fmt"
	root "govconnect"
	"govconnect/internal/config"
	"govconnect/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Creates or upgrades the accounts, profiles, tenders and job queue tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				return fmt.Errorf("migrations need a *sql.DB, got %T", strg.DB)
			}
			if err := migrateSchema(ctx, db); err != nil {
				return err
			}

			return migrateQueue(ctx, db)
		},
	}
}

// migrateSchema applies the embedded goose migrations.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}
	logger.Info(ctx, "schema migrated", zap.Int64("version", version))

	return nil
}

// migrateQueue brings the River tables to the newest version River ships.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create job queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	target := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not read job queue version: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1].Version >= target {
		logger.Info(ctx, "job queue already up to date", zap.Int("version", target))

		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: target}); err != nil {
		return fmt.Errorf("could not migrate job queue: %w", err)
	}
	logger.Info(ctx, "job queue migrated", zap.Int("version", target))

	return nil
}
