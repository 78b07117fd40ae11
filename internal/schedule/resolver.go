package schedule

import (
	"cmp"
	"math"
	"slices"

	"service-schedule/internal/domain"
)

// Resolution is the outcome of resolving one day's entries against a time of day.
type Resolution struct {
	// Today holds the entries of the resolved day, ascending by start time.
	Today        []domain.ScheduleEntry
	CurrentClass *domain.ScheduleEntry
	NextClass    *domain.ScheduleEntry
	Countdown    string
}

// IsActive reports whether entry runs on day and nowMinutes lies within its
// start and end time, both ends inclusive.
func IsActive(entry domain.ScheduleEntry, day string, nowMinutes int) bool {
	if !SameDay(entry.Day, day) {
		return false
	}
	start, ok := ToMinutes(entry.StartTime)
	if !ok {
		return false
	}
	end, ok := ToMinutes(entry.EndTime)
	if !ok {
		return false
	}
	return nowMinutes >= start && nowMinutes <= end
}

// ResolveToday picks the active entry and the next entry to start on day.
// When entries overlap, the earliest-starting active one wins.
func ResolveToday(entries []domain.ScheduleEntry, day string, nowMinutes int) Resolution {
	key := DayKey(day)
	today := make([]domain.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if DayKey(entry.Day) == key {
			today = append(today, entry)
		}
	}
	slices.SortStableFunc(today, func(a, b domain.ScheduleEntry) int {
		return cmp.Compare(startKey(a), startKey(b))
	})

	res := Resolution{Today: today}
	for i := range today {
		if IsActive(today[i], day, nowMinutes) {
			res.CurrentClass = &today[i]
			break
		}
	}
	for i := range today {
		start, ok := ToMinutes(today[i].StartTime)
		if !ok {
			continue
		}
		if start > nowMinutes {
			res.NextClass = &today[i]
			res.Countdown = FormatCountdown(start - nowMinutes)
			break
		}
	}
	return res
}

// SortAndFilterAll returns a copy of entries restricted to selectedDay (all
// days when empty), ordered by the locale's day rank and then start time.
func SortAndFilterAll(entries []domain.ScheduleEntry, selectedDay string, locale Locale) []domain.ScheduleEntry {
	key := DayKey(selectedDay)
	out := make([]domain.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if key != "" && DayKey(entry.Day) != key {
			continue
		}
		out = append(out, entry)
	}
	slices.SortStableFunc(out, func(a, b domain.ScheduleEntry) int {
		if c := cmp.Compare(locale.Rank(a.Day), locale.Rank(b.Day)); c != 0 {
			return c
		}
		return cmp.Compare(startKey(a), startKey(b))
	})
	return out
}

func startKey(entry domain.ScheduleEntry) int {
	start, ok := ToMinutes(entry.StartTime)
	if !ok {
		return math.MaxInt
	}
	return start
}
