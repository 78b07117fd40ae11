package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"service-schedule/internal/logger"
	"service-schedule/internal/repository"
	"service-schedule/internal/service"
	servicemigrations "service-schedule/migrations"
)

func openStore(ctx context.Context, cfg config, log logger.Logger) (*sql.DB, repository.Dialect, error) {
	dialect, dsn, err := repository.DialectFromURL(cfg.DatabaseURL)
	if err != nil {
		return nil, repository.Dialect{}, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, repository.Dialect{}, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, repository.Dialect{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Debug("database connection successful: dialect=%s", dialect.Name())

	return db, dialect, nil
}

// openSource builds the configured entry source. The returned close function
// is always safe to call.
func openSource(ctx context.Context, cfg config, log logger.Logger, migrate bool) (service.EntrySource, func(), error) {
	if cfg.DataSource == dataSourceREST {
		log.Debug("using rest source: url=%s table=%s", cfg.SupabaseURL, cfg.SupabaseTable)
		source := service.NewRESTEntrySource(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseTable, service.DefaultRESTHTTPClient())
		return source, func() {}, nil
	}

	db, dialect, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, func() {}, err
	}
	if migrate {
		if err := servicemigrations.Up(db, dialect.Name()); err != nil {
			db.Close()
			return nil, func() {}, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Debug("migrations completed successfully")
	}

	txManager := repository.NewSQLTxManager(db, dialect)
	return service.NewSQLEntrySource(txManager), func() { db.Close() }, nil
}
