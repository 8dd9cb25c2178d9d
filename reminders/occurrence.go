package reminders

import "time"

// Replaced in tests
var now = time.Now

// NextOccurrence moves date forward a calendar day at a time until it is no
// longer before current. Dates already at or after current come back as is.
// The loop runs once per day of gap, callers pass dates close to current.
func NextOccurrence(date time.Time, current time.Time) time.Time {
	for current.Sub(date) > 0 {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// GetNextOccurrence is NextOccurrence against the wall clock
func GetNextOccurrence(date time.Time) time.Time {
	return NextOccurrence(date, now())
}
