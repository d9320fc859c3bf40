package reminder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pawclinic/vet-scheduler/internal/models"
)

// LogStrategy writes the reminder to the application log.
func LogStrategy(logger *zerolog.Logger) Strategy {
	return func(ctx context.Context, ap models.Appointment) error {
		logger.Info().
			Str("strategy", "log").
			Uint("appointment_id", ap.ID).
			Str("vet", ap.Vet.FullName()).
			Str("pet", ap.Pet.Name).
			Str("owner", ap.Pet.Owner.FirstName+" "+ap.Pet.Owner.LastName).
			Str("date", ap.AppointmentDate.Format("2006-01-02")).
			Str("time_slot", ap.TimeSlot).
			Msg("appointment reminder")

		if ap.Notes != "" {
			logger.Info().
				Uint("appointment_id", ap.ID).
				Str("notes", ap.Notes).
				Msg("appointment reminder notes")
		}
		return nil
	}
}

// EmailStrategy simulates an email send. No real transport is wired;
// the rendered message is logged instead, like the rest of the
// delivery pipeline would see it.
func EmailStrategy(logger *zerolog.Logger) Strategy {
	return func(ctx context.Context, ap models.Appointment) error {
		vetEmail := fmt.Sprintf("vet-%d@petclinic.example.com", ap.VetID)
		ownerEmail := ap.Pet.Owner.Email

		subject := fmt.Sprintf("Appointment reminder for %s", ap.Pet.Name)
		body := fmt.Sprintf(
			"Your pet %s has an appointment with %s on %s at %s.",
			ap.Pet.Name,
			ap.Vet.FullName(),
			ap.AppointmentDate.Format("2006-01-02"),
			ap.TimeSlot,
		)

		logger.Info().
			Str("strategy", "email").
			Uint("appointment_id", ap.ID).
			Str("to_vet", vetEmail).
			Str("to_owner", ownerEmail).
			Str("subject", subject).
			Str("body", body).
			Msg("appointment reminder email")
		return nil
	}
}
