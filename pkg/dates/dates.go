package dates

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "January 2, 2006"
	DateTimeLayout = "January 2, 2006 15:04"
)

// FormatDate renders t as "January 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatPtr formats a nullable timestamp, returning "" for nil
func FormatPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// RelativeTime describes t relative to now ("3 hours ago"). Anything older
// than 30 days, or in the future, is rendered as a plain date.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 0:
		return FormatDate(t)
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d <= 30*24*time.Hour:
		return plural(int(d/(7*24*time.Hour)), "week")
	}
	return FormatDate(t)
}

// RelativePtr is RelativeTime for nullable timestamps
func RelativePtr(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	return RelativeTime(*t, now)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
