package main

import (
	"context"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"service-schedule/internal/app"
	"service-schedule/internal/logger"
)

// setup loads the config and a logger writing to w.
func setup(w io.Writer) (config, logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	log := logger.New(w, cfg.LogLevel)
	log.Debug("config loaded: data_source=%s http_addr=%s timezone=%s locale=%s tick=%s refresh=%s",
		cfg.DataSource,
		cfg.HTTPAddr,
		cfg.Timezone,
		cfg.locale.Name(),
		cfg.TickInterval,
		cfg.RefreshInterval,
	)
	return cfg, log, nil
}

func serve(c *cli.Context) error {
	cfg, log, err := setup(c.App.Writer)
	if err != nil {
		return err
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openSource(shutdownCtx, cfg, log, true)
	if err != nil {
		return err
	}
	defer closeSource()

	application := app.New(source, cfg.serviceOptions(), log)
	if err := application.Refresh(shutdownCtx); err == nil {
		log.Info("schedule loaded: entries=%d", len(application.Service().List("")))
	}

	startClockLoop(shutdownCtx, application, cfg.TickInterval)
	startRefreshLoop(shutdownCtx, application, cfg.RefreshInterval)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           application.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("http shutdown error: %v", err)
		}
	}()

	log.Info("service-schedule listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func startClockLoop(ctx context.Context, application *app.App, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		application.Tick(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				application.Tick(now)
			}
		}
	}()
}

// startRefreshLoop re-reads the entry set periodically. A zero interval keeps
// the entries from the initial fetch for the whole session.
func startRefreshLoop(ctx context.Context, application *app.App, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				// Failures are logged by the service and leave an empty schedule.
				_ = application.Refresh(ctx)
			}
		}
	}()
}
