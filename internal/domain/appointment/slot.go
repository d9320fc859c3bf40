package appointment

import (
	"time"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
)

// ===============================
// Time Slots
// ===============================

// TimeSlot is one of the six fixed bookable windows of a clinic day.
// The string form is what gets persisted and rendered.
type TimeSlot string

const (
	Slot0900 TimeSlot = "09:00-10:00"
	Slot1000 TimeSlot = "10:00-11:00"
	Slot1100 TimeSlot = "11:00-12:00"
	Slot1400 TimeSlot = "14:00-15:00"
	Slot1500 TimeSlot = "15:00-16:00"
	Slot1600 TimeSlot = "16:00-17:00"
)

// allSlots is ordered chronologically; slot ordering everywhere derives
// from the position in this list.
var allSlots = []TimeSlot{
	Slot0900,
	Slot1000,
	Slot1100,
	Slot1400,
	Slot1500,
	Slot1600,
}

var slotStartHour = map[TimeSlot]int{
	Slot0900: 9,
	Slot1000: 10,
	Slot1100: 11,
	Slot1400: 14,
	Slot1500: 15,
	Slot1600: 16,
}

func AllSlots() []TimeSlot {
	out := make([]TimeSlot, len(allSlots))
	copy(out, allSlots)
	return out
}

func ParseSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(s)
	if !slot.IsValid() {
		return "", httperr.ErrBusiness("invalid_time_slot")
	}
	return slot, nil
}

func (s TimeSlot) IsValid() bool {
	_, ok := slotStartHour[s]
	return ok
}

// Index returns the chronological position of the slot, or -1 for an
// unknown value.
func (s TimeSlot) Index() int {
	for i, slot := range allSlots {
		if slot == s {
			return i
		}
	}
	return -1
}

func (s TimeSlot) StartHour() int {
	return slotStartHour[s]
}

func (s TimeSlot) EndHour() int {
	return slotStartHour[s] + 1
}

// StartTime anchors the slot on a calendar day.
func (s TimeSlot) StartTime(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		s.StartHour(), 0, 0, 0,
		date.Location(),
	)
}

// EndedBy reports whether the slot window is already over at t, assuming
// t falls on the slot's own day.
func (s TimeSlot) EndedBy(t time.Time) bool {
	return t.Hour() >= s.EndHour()
}
