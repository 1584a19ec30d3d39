// Package workdays is the single working-day calendar for the application.
// Every report that needs day math (backlog aging, lead times, queue
// snapshots) goes through these functions instead of re-deriving its own;
// working days are Monday through Friday, with no holiday calendar.
package workdays

import "time"

// StartOfDay truncates t to midnight in its own location. Both ends of every
// count are truncated first, so time-of-day components can never shift a
// result by a day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsWorkingDay reports whether t falls on Monday–Friday.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Between counts the working days in [from, to), walking day by day.
// Returns 0 when to is on or before from; callers normalize order, so the
// result is non-negative by construction.
//
// The half-open interval means Between(Monday, Friday-same-week) == 4 and
// Between(Friday, Monday-next-week) == 1.
func Between(from, to time.Time) int {
	current := StartOfDay(from)
	end := StartOfDay(to)

	count := 0
	for current.Before(end) {
		if IsWorkingDay(current) {
			count++
		}
		current = current.AddDate(0, 0, 1)
	}
	return count
}

// Ago returns the date n working days before reference, truncated to
// midnight. Weekend days are skipped while walking back, so the result is
// always a working day (for n > 0).
func Ago(reference time.Time, n int) time.Time {
	result := StartOfDay(reference)
	counted := 0
	for counted < n {
		result = result.AddDate(0, 0, -1)
		if IsWorkingDay(result) {
			counted++
		}
	}
	return result
}

// IsOlderThan reports whether itemDate lies more than n working days before
// reference. Equivalent to comparing itemDate against the threshold date
// Ago(reference, n): the walk-back always lands on a counted working day, so
// Between(itemDate, reference) > n iff itemDate < Ago(reference, n).
func IsOlderThan(itemDate, reference time.Time, n int) bool {
	return Between(itemDate, reference) > n
}
