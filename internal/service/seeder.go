package service

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"service-schedule/internal/domain"
	"service-schedule/internal/repository"
	"service-schedule/internal/schedule"
)

type seedFile struct {
	Entries []domain.ScheduleEntry `yaml:"entries"`
}

// LoadSeedFile reads entries from a YAML document with a top-level "entries" list.
func LoadSeedFile(path string) ([]domain.ScheduleEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return file.Entries, nil
}

// Seeder writes schedule entries into the SQL store.
type Seeder struct {
	txManager repository.TxManager
}

func NewSeeder(txManager repository.TxManager) *Seeder {
	return &Seeder{txManager: txManager}
}

// Seed validates every entry and upserts all of them in one transaction.
func (s *Seeder) Seed(ctx context.Context, entries []domain.ScheduleEntry) error {
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return err
		}
	}

	return s.txManager.WithTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		for _, entry := range entries {
			if err := repos.Entries.Upsert(ctx, entry); err != nil {
				return fmt.Errorf("upsert entry %d: %w", entry.ID, err)
			}
		}
		return nil
	})
}

func validateEntry(entry domain.ScheduleEntry) error {
	if entry.ID <= 0 || schedule.DayKey(entry.Day) == "" || entry.CourseName == "" {
		return fmt.Errorf("entry %d: %w", entry.ID, ErrInvalidInput)
	}
	start, ok := schedule.ToMinutes(entry.StartTime)
	if !ok {
		return fmt.Errorf("entry %d start time %q: %w", entry.ID, entry.StartTime, ErrInvalidInput)
	}
	end, ok := schedule.ToMinutes(entry.EndTime)
	if !ok {
		return fmt.Errorf("entry %d end time %q: %w", entry.ID, entry.EndTime, ErrInvalidInput)
	}
	if end < start {
		return fmt.Errorf("entry %d ends before it starts: %w", entry.ID, ErrInvalidInput)
	}
	return nil
}
