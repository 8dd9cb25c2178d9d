package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2023, 1, 10, 15, 0, 0, 0, time.UTC)

func TestNextOccurrencePastDate(t *testing.T) {
	date := time.Date(2023, 1, 1, 9, 30, 15, 500*int(time.Millisecond), time.UTC)

	next := NextOccurrence(date, fixedNow)
	assert.Equal(t, time.Date(2023, 1, 11, 9, 30, 15, 500*int(time.Millisecond), time.UTC), next)
	assert.False(t, next.Before(fixedNow))
	// One day earlier would be in the past
	assert.True(t, next.AddDate(0, 0, -1).Before(fixedNow))
}

func TestNextOccurrenceLaterToday(t *testing.T) {
	date := time.Date(2023, 1, 3, 18, 0, 0, 0, time.UTC)

	next := NextOccurrence(date, fixedNow)
	assert.Equal(t, time.Date(2023, 1, 10, 18, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrenceFutureDateUnchanged(t *testing.T) {
	date := time.Date(2023, 2, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, date, NextOccurrence(date, fixedNow))
}

func TestNextOccurrenceEqualToNow(t *testing.T) {
	assert.Equal(t, fixedNow, NextOccurrence(fixedNow, fixedNow))
}

func TestNextOccurrenceIsFixedPoint(t *testing.T) {
	dates := []time.Time{
		time.Date(2022, 12, 25, 23, 59, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 14, 59, 59, 0, time.UTC),
		time.Date(2023, 1, 10, 15, 0, 1, 0, time.UTC),
	}
	for _, date := range dates {
		once := NextOccurrence(date, fixedNow)
		assert.Equal(t, once, NextOccurrence(once, fixedNow))
		assert.Equal(t, date.Hour(), once.Hour())
		assert.Equal(t, date.Minute(), once.Minute())
		assert.Equal(t, date.Second(), once.Second())
	}
}

func TestNextOccurrenceKeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// DST starts 2023-03-12
	date := time.Date(2023, 3, 10, 9, 0, 0, 0, loc)
	current := time.Date(2023, 3, 13, 8, 0, 0, 0, loc)

	next := NextOccurrence(date, current)
	assert.Equal(t, time.Date(2023, 3, 13, 9, 0, 0, 0, loc), next)
}

func TestGetNextOccurrenceUsesClock(t *testing.T) {
	defer func() { now = time.Now }()
	now = func() time.Time { return fixedNow }

	date := time.Date(2023, 1, 9, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 1, 10, 16, 0, 0, 0, time.UTC), GetNextOccurrence(date))
}
