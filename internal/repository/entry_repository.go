package repository

import (
	"context"
	"database/sql"

	"service-schedule/internal/domain"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type EntryRepository interface {
	ListAll(ctx context.Context) ([]domain.ScheduleEntry, error)
	Upsert(ctx context.Context, entry domain.ScheduleEntry) error
}

type EntrySQLRepository struct {
	execer  Execer
	dialect Dialect
}

func NewEntrySQLRepository(execer Execer, dialect Dialect) *EntrySQLRepository {
	return &EntrySQLRepository{execer: execer, dialect: dialect}
}

func (r *EntrySQLRepository) ListAll(ctx context.Context) ([]domain.ScheduleEntry, error) {
	query := `
SELECT id, day, course_name, instructor, location, ` +
		r.dialect.TimeColumn("start_time") + `, ` +
		r.dialect.TimeColumn("end_time") + `
FROM ` + r.dialect.EntryTable() + `
ORDER BY id ASC
`

	rows, err := r.execer.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.ScheduleEntry{}
	for rows.Next() {
		var entry domain.ScheduleEntry
		var day, courseName, instructor, location sql.NullString
		var startTime, endTime sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&day,
			&courseName,
			&instructor,
			&location,
			&startTime,
			&endTime,
		); err != nil {
			return nil, err
		}
		entry.Day = day.String
		entry.CourseName = courseName.String
		entry.Instructor = instructor.String
		entry.Location = location.String
		entry.StartTime = startTime.String
		entry.EndTime = endTime.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *EntrySQLRepository) Upsert(ctx context.Context, entry domain.ScheduleEntry) error {
	d := r.dialect
	query := `
INSERT INTO ` + d.EntryTable() + ` (
	id,
	day,
	course_name,
	instructor,
	location,
	start_time,
	end_time
) VALUES (` + d.Placeholder(1) + `, ` + d.Placeholder(2) + `, ` + d.Placeholder(3) + `, ` +
		d.Placeholder(4) + `, ` + d.Placeholder(5) + `, ` + d.TimeParam(6) + `, ` + d.TimeParam(7) + `)
ON CONFLICT (id)
DO UPDATE SET
	day = excluded.day,
	course_name = excluded.course_name,
	instructor = excluded.instructor,
	location = excluded.location,
	start_time = excluded.start_time,
	end_time = excluded.end_time
`

	_, err := r.execer.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Day,
		entry.CourseName,
		entry.Instructor,
		entry.Location,
		entry.StartTime,
		entry.EndTime,
	)
	return err
}
