package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSlots(t *testing.T) {
	slots := AllSlots()
	require.Len(t, slots, 6)

	// Chronological, with the lunch break between 12:00 and 14:00.
	assert.Equal(t, Slot0900, slots[0])
	assert.Equal(t, Slot1100, slots[2])
	assert.Equal(t, Slot1400, slots[3])
	assert.Equal(t, Slot1600, slots[5])

	// Mutating the returned slice must not touch the catalog.
	slots[0] = TimeSlot("tampered")
	assert.Equal(t, Slot0900, AllSlots()[0])
}

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot("14:00-15:00")
	require.NoError(t, err)
	assert.Equal(t, Slot1400, slot)

	for _, bad := range []string{"", "12:00-13:00", "9:00-10:00", "09:00"} {
		_, err := ParseSlot(bad)
		assert.Error(t, err, bad)
	}
}

func TestSlotIndex(t *testing.T) {
	assert.Equal(t, 0, Slot0900.Index())
	assert.Equal(t, 3, Slot1400.Index())
	assert.Equal(t, -1, TimeSlot("12:00-13:00").Index())
}

func TestSlotTimes(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	start := Slot1500.StartTime(date)
	assert.Equal(t, 15, start.Hour())
	assert.Equal(t, date.Day(), start.Day())

	assert.Equal(t, 10, Slot0900.EndHour())
	assert.Equal(t, 17, Slot1600.EndHour())
}

func TestSlotEndedBy(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.False(t, Slot0900.EndedBy(day.Add(9*time.Hour+30*time.Minute)))
	assert.True(t, Slot0900.EndedBy(day.Add(10*time.Hour)))
	assert.True(t, Slot0900.EndedBy(day.Add(16*time.Hour)))
	assert.False(t, Slot1600.EndedBy(day.Add(16*time.Hour+59*time.Minute)))
	assert.True(t, Slot1600.EndedBy(day.Add(17*time.Hour)))
}
