package main

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"service-schedule/internal/schedule"
	"service-schedule/internal/service"
)

const (
	dataSourceSQL  = "sql"
	dataSourceREST = "rest"
)

type config struct {
	DataSource        string
	DatabaseURL       string
	SupabaseURL       string
	SupabaseKey       string
	SupabaseTable     string
	HTTPAddr          string
	LogLevel          string
	Timezone          string
	DayLocale         string
	TickInterval      time.Duration
	RefreshInterval   time.Duration
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	location *time.Location
	locale   schedule.Locale
}

func loadConfig() (config, error) {
	var cfg config

	var err error
	cfg.DataSource = strings.ToLower(getEnv("DATA_SOURCE", dataSourceSQL))
	switch cfg.DataSource {
	case dataSourceSQL:
		if cfg.DatabaseURL, err = getRequiredEnv("DATABASE_URL"); err != nil {
			return cfg, err
		}
	case dataSourceREST:
		if cfg.SupabaseURL, err = getRequiredEnv("SUPABASE_URL"); err != nil {
			return cfg, err
		}
		if cfg.SupabaseKey, err = getRequiredEnv("SUPABASE_KEY"); err != nil {
			return cfg, err
		}
	default:
		return cfg, &configError{message: "invalid DATA_SOURCE: " + cfg.DataSource}
	}
	cfg.SupabaseTable = getEnv("SUPABASE_TABLE", "jadwal")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.Timezone = getEnv("TIMEZONE", "Local")
	if cfg.location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return cfg, &configError{message: "invalid TIMEZONE: " + err.Error()}
	}
	cfg.DayLocale = getEnv("DAY_LOCALE", "english")
	locale, ok := schedule.LocaleByName(cfg.DayLocale)
	if !ok {
		return cfg, &configError{message: "invalid DAY_LOCALE: " + cfg.DayLocale}
	}
	cfg.locale = locale

	if cfg.TickInterval, err = getEnvDuration("TICK_INTERVAL", time.Second); err != nil {
		return cfg, err
	}
	if cfg.TickInterval <= 0 {
		return cfg, &configError{message: "TICK_INTERVAL must be positive"}
	}
	if cfg.RefreshInterval, err = getEnvDuration("REFRESH_INTERVAL", 0); err != nil {
		return cfg, err
	}
	if cfg.DBMaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return cfg, err
	}
	if cfg.DBMaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return cfg, err
	}
	if cfg.DBConnMaxLifetime, err = getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c config) serviceOptions() service.Options {
	return service.Options{Locale: c.locale, Location: c.location}
}

func getRequiredEnv(key string) (string, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return "", &configError{message: "missing required environment variable: " + key}
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, &configError{message: "invalid int for " + key + ": " + err.Error()}
	}
	return parsed, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, &configError{message: "invalid duration for " + key + ": " + err.Error()}
	}
	return parsed, nil
}

type configError struct {
	message string
}

func (e *configError) Error() string {
	return e.message
}

var _ error = (*configError)(nil)
