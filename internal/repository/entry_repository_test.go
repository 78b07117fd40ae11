package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"service-schedule/internal/domain"
	"service-schedule/migrations"
)

func openStore(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(SQLite.DriverName(), filepath.Join(t.TempDir(), "schedule.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Up(db, SQLite.Name()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEntryRepositoryUpsertAndList(t *testing.T) {
	db := openStore(t)
	repo := NewEntrySQLRepository(db, SQLite)
	ctx := context.Background()

	entries := []domain.ScheduleEntry{
		{ID: 2, Day: "Tuesday", CourseName: "Physics", Instructor: "Dr. Sari", Location: "B-201", StartTime: "10:00:00", EndTime: "11:40:00"},
		{ID: 1, Day: "Monday", CourseName: "Algebra", Instructor: "Dr. Budi", Location: "A-101", StartTime: "08:00:00", EndTime: "09:40:00"},
	}
	for _, e := range entries {
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatalf("Upsert(%d): %v", e.ID, err)
		}
	}

	got, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListAll returned %d entries, want 2", len(got))
	}
	if got[0] != entries[1] || got[1] != entries[0] {
		t.Fatalf("ListAll = %+v, want ordered by id", got)
	}
}

func TestEntryRepositoryUpsertReplaces(t *testing.T) {
	db := openStore(t)
	repo := NewEntrySQLRepository(db, SQLite)
	ctx := context.Background()

	first := domain.ScheduleEntry{ID: 7, Day: "Monday", CourseName: "Algebra", StartTime: "08:00", EndTime: "09:00"}
	second := first
	second.Location = "Lab 3"
	second.EndTime = "09:30"

	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert first: %v", err)
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert second: %v", err)
	}

	got, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 1 || got[0] != second {
		t.Fatalf("ListAll = %+v, want only %+v", got, second)
	}
}

func TestEntryRepositoryListEmpty(t *testing.T) {
	db := openStore(t)
	got, err := NewEntrySQLRepository(db, SQLite).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("ListAll = %#v, want empty non-nil slice", got)
	}
}

func TestTxManagerRollsBackOnError(t *testing.T) {
	db := openStore(t)
	tm := NewSQLTxManager(db, SQLite)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := tm.WithTx(ctx, func(ctx context.Context, repos TxRepositories) error {
		if err := repos.Entries.Upsert(ctx, domain.ScheduleEntry{ID: 1, Day: "Monday", CourseName: "Algebra", StartTime: "08:00", EndTime: "09:00"}); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithTx error = %v, want %v", err, errBoom)
	}

	got, err := NewEntrySQLRepository(db, SQLite).ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rolled back insert is visible: %+v", got)
	}
}

func TestTxManagerCommits(t *testing.T) {
	db := openStore(t)
	tm := NewSQLTxManager(db, SQLite)
	ctx := context.Background()

	err := tm.WithTx(ctx, func(ctx context.Context, repos TxRepositories) error {
		return repos.Entries.Upsert(ctx, domain.ScheduleEntry{ID: 1, Day: "Monday", CourseName: "Algebra", StartTime: "08:00", EndTime: "09:00"})
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	var entries []domain.ScheduleEntry
	err = tm.WithTx(ctx, func(ctx context.Context, repos TxRepositories) error {
		var err error
		entries, err = repos.Entries.ListAll(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want one committed row", entries)
	}
}
