package schedule

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// UnrankedDay is the rank of any day name outside the locale's Monday..Friday.
const UnrankedDay = 99

// DayKey canonicalizes a day name for comparison.
func DayKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameDay reports whether two day names refer to the same day.
func SameDay(a, b string) bool {
	return DayKey(a) == DayKey(b)
}

// Locale names the days of the week, indexed by time.Weekday.
type Locale struct {
	name string
	days [7]string
}

var (
	English = Locale{
		name: "english",
		days: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	}
	Indonesian = Locale{
		name: "indonesian",
		days: [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"},
	}
)

// LocaleByName resolves a configured locale name. The empty string selects English.
func LocaleByName(name string) (Locale, bool) {
	switch DayKey(name) {
	case "", "english", "en":
		return English, true
	case "indonesian", "id":
		return Indonesian, true
	default:
		return Locale{}, false
	}
}

func (l Locale) Name() string {
	return l.name
}

// DayName returns the locale's name for t's weekday.
func (l Locale) DayName(t time.Time) string {
	return l.days[t.Weekday()]
}

// Weekdays returns Monday through Friday in display order.
func (l Locale) Weekdays() []string {
	out := make([]string, 0, 5)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		out = append(out, l.days[wd])
	}
	return out
}

// Rank orders day names for display: Monday=1 .. Friday=5, anything else last.
func (l Locale) Rank(day string) int {
	key := DayKey(day)
	if key == "" {
		return UnrankedDay
	}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		if DayKey(l.days[wd]) == key {
			return int(wd)
		}
	}
	return UnrankedDay
}
