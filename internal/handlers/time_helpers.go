package handlers

import (
	"time"

	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

const dateLayout = "2006-01-02"

func parseClinicDate(dateStr, tz string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, dateStr, timezone.Location(tz))
}
