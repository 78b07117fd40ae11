package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"service-schedule/internal/domain"
	"service-schedule/internal/logger"
	"service-schedule/internal/schedule"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type Options struct {
	Locale   schedule.Locale
	Location *time.Location
}

// ScheduleService holds the session state of the schedule: the entry set from
// the last fetch and the timestamp of the last clock tick. Both are inputs to
// the resolver and are replaced wholesale, never mutated in place.
type ScheduleService struct {
	source   EntrySource
	locale   schedule.Locale
	location *time.Location
	logger   logger.Logger
	clock    func() time.Time

	mu        sync.RWMutex
	entries   []domain.ScheduleEntry
	revision  string
	fetchedAt time.Time
	now       time.Time
	current   domain.ScheduleEntry
	hasActive bool
}

func NewScheduleService(source EntrySource, opts Options, log logger.Logger) *ScheduleService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Locale.Name() == "" {
		opts.Locale = schedule.English
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &ScheduleService{
		source:   source,
		locale:   opts.Locale,
		location: opts.Location,
		logger:   log,
		clock:    time.Now,
		entries:  []domain.ScheduleEntry{},
	}
}

// Refresh replaces the entry set with a fresh read from the source. A failed
// read leaves the service with an empty entry set and returns the error. A
// read cut short by ctx being canceled keeps the previous entry set.
func (s *ScheduleService) Refresh(ctx context.Context) error {
	entries, err := s.source.ListEntries(ctx)
	if errors.Is(err, context.Canceled) {
		s.logger.Warning("schedule fetch canceled, keeping previous entries: %v", err)
		return err
	}
	if err != nil {
		s.logger.Error("schedule fetch failed: %v", err)
		entries = []domain.ScheduleEntry{}
	}
	if entries == nil {
		entries = []domain.ScheduleEntry{}
	}

	revision := uuid.NewString()
	s.mu.Lock()
	s.entries = entries
	s.revision = revision
	s.fetchedAt = s.clock()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.logger.Warning("schedule source returned no entries")
	}
	s.logger.Debug("schedule refreshed: entries=%d revision=%s", len(entries), revision)
	return nil
}

// Tick records the latest clock reading and logs when the current class changes.
func (s *ScheduleService) Tick(now time.Time) {
	local := now.In(s.location)
	day := s.locale.DayName(local)

	s.mu.Lock()
	s.now = now
	res := schedule.ResolveToday(s.entries, day, schedule.NowMinutes(local))
	prev, prevActive := s.current, s.hasActive
	if res.CurrentClass != nil {
		s.current, s.hasActive = *res.CurrentClass, true
	} else {
		s.current, s.hasActive = domain.ScheduleEntry{}, false
	}
	s.mu.Unlock()

	changed := res.CurrentClass == nil || *res.CurrentClass != prev
	if prevActive && changed {
		s.logger.Info("class ended: id=%d course=%q", prev.ID, prev.CourseName)
	}
	if res.CurrentClass != nil && (!prevActive || changed) {
		s.logger.Info("class started: id=%d course=%q location=%q ends=%s",
			res.CurrentClass.ID,
			res.CurrentClass.CourseName,
			res.CurrentClass.Location,
			schedule.ClockLabel(res.CurrentClass.EndTime),
		)
	}
}

// Board resolves the current and next class at the latest tick, or at the
// service clock when no tick has been recorded yet.
func (s *ScheduleService) Board() domain.Board {
	s.mu.RLock()
	entries := s.entries
	revision := s.revision
	fetchedAt := s.fetchedAt
	now := s.now
	s.mu.RUnlock()

	if now.IsZero() {
		now = s.clock()
	}
	local := now.In(s.location)
	day := s.locale.DayName(local)
	nowMinutes := schedule.NowMinutes(local)
	res := schedule.ResolveToday(entries, day, nowMinutes)

	board := domain.Board{
		Day:          day,
		Clock:        local.Format("15:04:05"),
		NowMinutes:   nowMinutes,
		CurrentClass: res.CurrentClass,
		NextClass:    res.NextClass,
		Countdown:    res.Countdown,
		Today:        s.views(res.Today, day, nowMinutes),
		Revision:     revision,
	}
	if !fetchedAt.IsZero() {
		board.FetchedAt = &fetchedAt
	}
	return board
}

// List returns the entries of day (every day when empty) in display order,
// each flagged when it is running at the latest tick.
func (s *ScheduleService) List(day string) []domain.EntryView {
	s.mu.RLock()
	entries := s.entries
	now := s.now
	s.mu.RUnlock()

	if now.IsZero() {
		now = s.clock()
	}
	local := now.In(s.location)
	sorted := schedule.SortAndFilterAll(entries, day, s.locale)
	return s.views(sorted, s.locale.DayName(local), schedule.NowMinutes(local))
}

// Weekdays returns the day names offered as filters.
func (s *ScheduleService) Weekdays() []string {
	return s.locale.Weekdays()
}

func (s *ScheduleService) views(entries []domain.ScheduleEntry, day string, nowMinutes int) []domain.EntryView {
	views := make([]domain.EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, domain.EntryView{
			ScheduleEntry: entry,
			Active:        schedule.IsActive(entry, day, nowMinutes),
		})
	}
	return views
}
