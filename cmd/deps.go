package main

import (
	"context"
	"govconnect/internal/config"
	"govconnect/pkg/localstore/sqlite"
	"govconnect/pkg/logger"
	"govconnect/pkg/storage/postgres"

	"go.uber.org/zap"
)

// getPostgres opens the account, profile and tender database. The returned
// func closes the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
		SslMode:            db.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not open accounts database",
			zap.String("host", db.Host), zap.String("database", db.DatabaseName), zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing accounts database...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close accounts database", zap.Error(err))
		}
	}
}

// getLocalStore opens the SQLite file that keeps the device session record.
func getLocalStore(ctx context.Context, cfg *config.Config) (*sqlite.Store, func()) {
	local, err := sqlite.Open(ctx, cfg.LocalStore.Path)
	if err != nil {
		logger.Fatal(ctx, "could not open local store", zap.String("path", cfg.LocalStore.Path), zap.Error(err))
	}

	return local, func() {
		if err := local.Close(); err != nil {
			logger.Warn(ctx, "could not close local store", zap.Error(err))
		}
	}
}
