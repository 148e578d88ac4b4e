package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// PeriodKey maps a date to the key of the period containing it.
// month: 2024-03, quarter: 2024-Q1, half: 2024-H1, year: 2024.
func PeriodKey(date time.Time, granularity domain.Granularity) string {
	year, month, _ := date.Date()
	switch granularity {
	case domain.GranularityQuarter:
		return fmt.Sprintf("%04d-Q%d", year, (int(month)-1)/3+1)
	case domain.GranularityHalf:
		half := 1
		if month > time.June {
			half = 2
		}
		return fmt.Sprintf("%04d-H%d", year, half)
	case domain.GranularityYear:
		return fmt.Sprintf("%04d", year)
	default:
		return fmt.Sprintf("%04d-%02d", year, int(month))
	}
}

// PeriodKeys walks month by month from the month of from through the month of to
// and returns the distinct period keys in chronological order.
// A range whose end precedes its start yields an empty list.
func PeriodKeys(from, to time.Time, granularity domain.Granularity) []string {
	keys := []string{}
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return keys
	}

	cursor := firstOfMonth(from)
	end := firstOfMonth(to)
	seen := make(map[string]struct{})
	for !cursor.After(end) {
		key := PeriodKey(cursor, granularity)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}

// InRange reports whether date falls on or between from and to, by calendar day.
func InRange(date, from, to time.Time) bool {
	d := domain.DateOnly(date)
	return !d.Before(domain.DateOnly(from)) && !d.After(domain.DateOnly(to))
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// periodIndex maps each key to its column.
func periodIndex(keys []string) map[string]int {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	return idx
}
