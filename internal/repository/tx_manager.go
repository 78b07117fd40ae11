package repository

import (
	"context"
	"database/sql"
)

type TxRepositories struct {
	Entries EntryRepository
}

type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

type SQLTxManager struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLTxManager(db *sql.DB, dialect Dialect) *SQLTxManager {
	return &SQLTxManager{db: db, dialect: dialect}
}

func (m *SQLTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	var opts *sql.TxOptions
	if m.dialect == Postgres {
		opts = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	repos := TxRepositories{
		Entries: NewEntrySQLRepository(tx, m.dialect),
	}

	if err := fn(ctx, repos); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return tx.Commit()
}
