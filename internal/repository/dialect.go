package repository

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnsupportedDatabaseURL = errors.New("unsupported database url")

// Dialect captures the SQL differences between the Postgres store the
// schedule normally lives in and the local sqlite store.
type Dialect struct {
	name       string
	driverName string
	entryTable string
}

var (
	Postgres = Dialect{name: "postgres", driverName: "pgx", entryTable: "schedule.entries"}
	SQLite   = Dialect{name: "sqlite", driverName: "sqlite", entryTable: "schedule_entries"}
)

func (d Dialect) Name() string       { return d.name }
func (d Dialect) DriverName() string { return d.driverName }
func (d Dialect) EntryTable() string { return d.entryTable }

// Placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) Placeholder(n int) string {
	if d.name == Postgres.name {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// TimeColumn renders a time-of-day column as text.
func (d Dialect) TimeColumn(column string) string {
	if d.name == Postgres.name {
		return column + "::text"
	}
	return column
}

// TimeParam renders a bind parameter that is stored into a time-of-day column.
func (d Dialect) TimeParam(n int) string {
	if d.name == Postgres.name {
		return d.Placeholder(n) + "::text::time"
	}
	return d.Placeholder(n)
}

// DialectFromURL picks the dialect for a DATABASE_URL and returns the DSN to
// hand to sql.Open.
func DialectFromURL(databaseURL string) (Dialect, string, error) {
	url := strings.TrimSpace(databaseURL)
	lower := strings.ToLower(url)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return Postgres, url, nil
	case strings.HasPrefix(lower, "sqlite://"):
		dsn := url[len("sqlite://"):]
		if dsn == "" {
			return Dialect{}, "", ErrUnsupportedDatabaseURL
		}
		return SQLite, dsn, nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"),
		lower == ":memory:":
		return SQLite, url, nil
	default:
		return Dialect{}, "", ErrUnsupportedDatabaseURL
	}
}
