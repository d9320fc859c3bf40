package reminder

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

// Dispatcher selects appointments due for a reminder and fans each one
// out to every registered strategy, fire-and-forget.
//
// "Starting within the next 24 hours" is slot-granular, not timestamp
// arithmetic: today's pending/confirmed appointments whose slot has
// not ended yet, plus everything booked for tomorrow.
type Dispatcher struct {
	repo     domain.Repository
	registry *Registry
	tz       string

	now func() time.Time
}

func NewDispatcher(
	repo domain.Repository,
	registry *Registry,
	tz string,
) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		registry: registry,
		tz:       tz,
		now:      time.Now,
	}
}

// Run performs one reminder sweep and returns how many appointments
// were notified. Strategy failures are logged and swallowed; the
// sweep itself only fails when the store cannot be read.
func (d *Dispatcher) Run(ctx context.Context) (int, error) {
	now := d.now().In(timezone.Location(d.tz))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	appointments, err := d.repo.ListForReminder(ctx, today, tomorrow)
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, ap := range appointments {
		slot := domain.TimeSlot(ap.TimeSlot)

		if onDay(ap.AppointmentDate, today) && slot.EndedBy(now) {
			continue
		}

		for _, name := range d.registry.Names() {
			strategy, _ := d.registry.Get(name)
			if err := strategy(ctx, ap); err != nil {
				log.Error().
					Err(err).
					Str("strategy", name).
					Uint("appointment_id", ap.ID).
					Msg("reminder strategy failed")
			}
		}
		notified++
	}

	return notified, nil
}

// RunEvery triggers sweeps on a fixed interval until ctx is done.
func (d *Dispatcher) RunEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := d.Run(ctx)
			if err != nil {
				log.Error().Err(err).Msg("reminder sweep failed")
				continue
			}
			log.Info().Int("notified", count).Msg("reminder sweep done")
		}
	}
}

func onDay(date, day time.Time) bool {
	return date.Year() == day.Year() && date.YearDay() == day.YearDay()
}
