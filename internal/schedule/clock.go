package schedule

import (
	"strconv"
	"strings"
	"time"
)

// ToMinutes parses the leading HH:MM of a time-of-day string and returns the
// minutes since midnight. Anything after the minutes (":SS", timezone suffix)
// is ignored. ok is false when the prefix is not a valid clock time.
func ToMinutes(value string) (minutes int, ok bool) {
	value = strings.TrimSpace(value)
	sep := strings.IndexByte(value, ':')
	if sep < 1 || sep > 2 || len(value) < sep+3 {
		return 0, false
	}

	hours, ok := parseDigits(value[:sep])
	if !ok || hours > 23 {
		return 0, false
	}
	mins, ok := parseDigits(value[sep+1 : sep+3])
	if !ok || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}

func parseDigits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NowMinutes returns the minutes since midnight of t in t's own location.
func NowMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatCountdown renders a minute difference as "{H}H {M}M", dropping the
// hour part when it is zero.
func FormatCountdown(diffMinutes int) string {
	if diffMinutes < 0 {
		diffMinutes = 0
	}
	h := diffMinutes / 60
	m := diffMinutes % 60
	if h > 0 {
		return strconv.Itoa(h) + "H " + strconv.Itoa(m) + "M"
	}
	return strconv.Itoa(m) + "M"
}

// ClockLabel trims a stored time to HH:MM for display.
func ClockLabel(value string) string {
	minutes, ok := ToMinutes(value)
	if !ok {
		return value
	}
	return formatHHMM(minutes)
}

func formatHHMM(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	var b strings.Builder
	if h < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(h))
	b.WriteByte(':')
	if m < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(m))
	return b.String()
}
