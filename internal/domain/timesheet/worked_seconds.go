// Package timesheet computes effective worked time from start/stop
// registrations. The warehouse has one fixed unpaid break from 11:00 to
// 11:30; any overlap between a registration and that window is deducted, per
// day, for registrations that span midnight.
package timesheet

import "time"

// Fixed daily break window, minutes after midnight.
const (
	breakStartMinutes = 11 * 60
	breakEndMinutes   = 11*60 + 30
)

// WorkedSeconds returns the effective seconds worked between start and end,
// with the 11:00–11:30 break deducted for each calendar day the interval
// touches. Returns 0 when end is on or before start; never negative.
func WorkedSeconds(start, end time.Time) int64 {
	if !end.After(start) {
		return 0
	}

	var total float64
	cursor := start

	for cursor.Before(end) {
		y, m, d := cursor.Date()
		dayStart := time.Date(y, m, d, 0, 0, 0, 0, cursor.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		segmentEnd := end
		if dayEnd.Before(end) {
			segmentEnd = dayEnd
		}
		segmentSeconds := segmentEnd.Sub(cursor).Seconds()

		breakStart := dayStart.Add(breakStartMinutes * time.Minute)
		breakEnd := dayStart.Add(breakEndMinutes * time.Minute)

		overlapStart := cursor
		if breakStart.After(overlapStart) {
			overlapStart = breakStart
		}
		overlapEnd := segmentEnd
		if breakEnd.Before(overlapEnd) {
			overlapEnd = breakEnd
		}
		overlapSeconds := overlapEnd.Sub(overlapStart).Seconds()
		if overlapSeconds < 0 {
			overlapSeconds = 0
		}

		total += segmentSeconds - overlapSeconds
		cursor = dayEnd
	}

	if total < 0 {
		return 0
	}
	return int64(total)
}

// WorkedHours is WorkedSeconds expressed in hours.
func WorkedHours(start, end time.Time) float64 {
	return float64(WorkedSeconds(start, end)) / 3600
}
