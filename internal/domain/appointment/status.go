package appointment

import "github.com/pawclinic/vet-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending_confirmation"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// IsActive reports whether the appointment still occupies its slot.
// Only canceled appointments release the (vet, date, slot) claim.
func (s Status) IsActive() bool {
	return s != StatusCanceled
}

// IsTerminal reports whether the status admits no further transition.
// Nothing leaves completed or canceled; a canceled appointment is
// never resurrected, a fresh booking replaces it.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// ===============================
// Transition guards
// ===============================

// CanConfirm: only a pending appointment can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only a confirmed appointment can be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pending or confirmed appointments can be canceled, and a
// canceled appointment is never resurrected.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanChange validates a status edit. Edits ride the same state machine
// as the dedicated transition endpoints; keeping the current status is
// always allowed.
func CanChange(current, next Status) error {
	if current == next {
		return nil
	}
	switch next {
	case StatusConfirmed:
		return CanConfirm(current)
	case StatusCompleted:
		return CanComplete(current)
	case StatusCanceled:
		return CanCancel(current)
	}
	return httperr.ErrBusiness("invalid_state")
}
