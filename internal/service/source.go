package service

import (
	"context"

	"service-schedule/internal/domain"
	"service-schedule/internal/repository"
)

// EntrySource is the single read the schedule needs from its data store.
type EntrySource interface {
	ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error)
}

type SQLEntrySource struct {
	txManager repository.TxManager
}

func NewSQLEntrySource(txManager repository.TxManager) *SQLEntrySource {
	return &SQLEntrySource{txManager: txManager}
}

func (s *SQLEntrySource) ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	var entries []domain.ScheduleEntry
	err := s.txManager.WithTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		var err error
		entries, err = repos.Entries.ListAll(ctx)
		return err
	})
	return entries, err
}
