package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli"

	"service-schedule/internal/repository"
	"service-schedule/internal/service"
	servicemigrations "service-schedule/migrations"
)

var (
	jsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "print JSON instead of text",
	}
	dayFlag = cli.StringFlag{
		Name:  "day, d",
		Usage: "only list entries of this day (case-insensitive)",
	}
	fileFlag = cli.StringFlag{
		Name:  "file, f",
		Usage: "YAML file with a top-level entries list",
	}
)

const commandTimeout = 30 * time.Second

// loadService logs to stderr so that stdout carries only the command output.
func loadService(ctx context.Context, c *cli.Context) (*service.ScheduleService, func(), error) {
	cfg, log, err := setup(c.App.ErrWriter)
	if err != nil {
		return nil, func() {}, err
	}
	source, closeSource, err := openSource(ctx, cfg, log, false)
	if err != nil {
		return nil, func() {}, err
	}
	svc := service.NewScheduleService(source, cfg.serviceOptions(), log)
	// A failed fetch is logged by the service and leaves an empty schedule.
	_ = svc.Refresh(ctx)
	svc.Tick(time.Now())
	return svc, closeSource, nil
}

func now(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svc, closeSource, err := loadService(ctx, c)
	if err != nil {
		return err
	}
	defer closeSource()

	board := svc.Board()
	if c.Bool("json") {
		return writeJSON(c.App.Writer, board)
	}
	return renderBoard(c.App.Writer, board)
}

func list(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svc, closeSource, err := loadService(ctx, c)
	if err != nil {
		return err
	}
	defer closeSource()

	entries := svc.List(c.String("day"))
	if c.Bool("json") {
		return writeJSON(c.App.Writer, entries)
	}
	return renderList(c.App.Writer, entries)
}

func seed(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		return errors.New("seed: --file is required")
	}
	entries, err := service.LoadSeedFile(path)
	if err != nil {
		return err
	}

	cfg, log, err := setup(c.App.Writer)
	if err != nil {
		return err
	}
	if cfg.DataSource != dataSourceSQL {
		return errors.New("seed: only the sql data source can be written")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	db, dialect, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := servicemigrations.Up(db, dialect.Name()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := service.NewSeeder(repository.NewSQLTxManager(db, dialect)).Seed(ctx, entries); err != nil {
		return err
	}
	log.Info("seeded %d entries from %s", len(entries), path)
	return nil
}

func migrate(c *cli.Context) error {
	cfg, log, err := setup(c.App.Writer)
	if err != nil {
		return err
	}
	if cfg.DataSource != dataSourceSQL {
		return errors.New("migrate: only the sql data source has migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	db, dialect, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := servicemigrations.Up(db, dialect.Name()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("migrations completed: dialect=%s", dialect.Name())
	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
