package appointment

import (
	"time"

	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

// nowFn is swapped out by tests that pin the clock.
var nowFn = time.Now

func todayIn(tz string) time.Time {
	now := nowFn().In(timezone.Location(tz))
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
