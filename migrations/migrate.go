package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// migrationSet describes where a dialect keeps its scripts and its record of
// applied ones.
type migrationSet struct {
	dir         string
	table       string
	createTable string
	existsQuery string
	insertQuery string
	markQuery   string
}

var sets = map[string]migrationSet{
	"postgres": {
		dir:   "postgres",
		table: "public.schema_migrations_schedule",
		createTable: `
CREATE TABLE IF NOT EXISTS public.schema_migrations_schedule (
	filename text PRIMARY KEY,
	applied_at timestamptz NOT NULL DEFAULT now()
)
`,
		existsQuery: `SELECT EXISTS (SELECT 1 FROM public.schema_migrations_schedule WHERE filename = $1)`,
		insertQuery: `INSERT INTO public.schema_migrations_schedule (filename) VALUES ($1)`,
		markQuery:   `INSERT INTO public.schema_migrations_schedule (filename) VALUES ($1) ON CONFLICT (filename) DO NOTHING`,
	},
	"sqlite": {
		dir:   "sqlite",
		table: "schema_migrations_schedule",
		createTable: `
CREATE TABLE IF NOT EXISTS schema_migrations_schedule (
	filename TEXT PRIMARY KEY,
	applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)
`,
		existsQuery: `SELECT EXISTS (SELECT 1 FROM schema_migrations_schedule WHERE filename = ?)`,
		insertQuery: `INSERT INTO schema_migrations_schedule (filename) VALUES (?)`,
		markQuery:   `INSERT INTO schema_migrations_schedule (filename) VALUES (?) ON CONFLICT (filename) DO NOTHING`,
	},
}

// Up applies the embedded scripts of the named dialect ("postgres" or
// "sqlite") that have not been recorded yet, in file name order.
func Up(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("db is required")
	}
	set, ok := sets[dialect]
	if !ok {
		return fmt.Errorf("no migrations for dialect %q", dialect)
	}

	if err := ensureMigrationsTable(db, set); err != nil {
		return err
	}

	names, err := fs.Glob(files, set.dir+"/*.sql")
	if err != nil {
		return fmt.Errorf("list embedded migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := isApplied(db, set, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		sqlBytes, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for %s: %w", name, err)
		}

		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			if !isIgnorableMigrationError(err) {
				return fmt.Errorf("apply migration %s: %w", name, err)
			}
			if err := markApplied(db, set, name); err != nil {
				return fmt.Errorf("record migration %s after ignored error: %w", name, err)
			}
			continue
		}
		if _, err := tx.Exec(set.insertQuery, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}

	return nil
}

func ensureMigrationsTable(db *sql.DB, set migrationSet) error {
	if _, err := db.Exec(set.createTable); err != nil {
		return fmt.Errorf("ensure migration table %s: %w", set.table, err)
	}
	return nil
}

func isApplied(db *sql.DB, set migrationSet, name string) (bool, error) {
	var exists bool
	if err := db.QueryRow(set.existsQuery, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("check migration %s: %w", name, err)
	}
	return exists, nil
}

func markApplied(db *sql.DB, set migrationSet, name string) error {
	_, err := db.Exec(set.markQuery, name)
	return err
}

func isIgnorableMigrationError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case "42P07", // duplicate_table
		"42710", // duplicate_object
		"42P06", // duplicate_schema
		"42701": // duplicate_column
		return true
	default:
		return false
	}
}
