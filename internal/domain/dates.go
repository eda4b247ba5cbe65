package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format of record dates
const DateLayout = "2006-01-02"

// ParseDate parses a record date. Both plain calendar dates and RFC3339
// timestamps are accepted; the result is midnight UTC of that calendar day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Day(t), nil
}

// Day returns midnight UTC of t's calendar day, taken in t's own location
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns how many calendar days date lies before now.
// Today is 0; a future date is negative.
func DaysAgo(date, now time.Time) int {
	return int(Day(now).Sub(Day(date)).Hours() / 24)
}

// InWindow reports whether date falls within the last `days` calendar days,
// i.e. today and the previous days-1 days. Future dates are never in a window.
func InWindow(date, now time.Time, days int) bool {
	ago := DaysAgo(date, now)
	return ago >= 0 && ago < days
}

// FormatDate renders t as a calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Dated pairs a record with its parsed calendar day
type Dated[T any] struct {
	Record T
	Day    time.Time
}

// SortByDate parses the date of every record and returns them in date order.
// Records with unparseable dates are skipped. Records on the same day keep
// their insertion order. The input is not modified.
func SortByDate[T any](records []T, date func(T) string) []Dated[T] {
	out := make([]Dated[T], 0, len(records))
	for _, r := range records {
		day, err := ParseDate(date(r))
		if err != nil {
			continue
		}
		out = append(out, Dated[T]{Record: r, Day: day})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// Days returns the parsed days of dated records
func Days[T any](records []Dated[T]) []time.Time {
	days := make([]time.Time, len(records))
	for i, r := range records {
		days[i] = r.Day
	}
	return days
}

// DistinctDays returns the sorted set of calendar days in days
func DistinctDays(days []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(days))
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		d = Day(d)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Streaks returns the current and longest runs of consecutive logged days.
// The current streak is still alive when the last log was yesterday.
func Streaks(days []time.Time, now time.Time) (current, longest int) {
	distinct := DistinctDays(days)
	run := 0
	for i, d := range distinct {
		if i > 0 && DaysAgo(distinct[i-1], d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Walk back from the most recent day that is not in the future
	last := -1
	for i := len(distinct) - 1; i >= 0; i-- {
		if DaysAgo(distinct[i], now) >= 0 {
			last = i
			break
		}
	}
	if last < 0 || DaysAgo(distinct[last], now) > 1 {
		return 0, longest
	}
	current = 1
	for i := last; i > 0 && DaysAgo(distinct[i-1], distinct[i]) == 1; i-- {
		current++
	}
	return current, longest
}
