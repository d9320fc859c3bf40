package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawclinic/vet-scheduler/internal/models"
)

func TestStatusValidity(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("scheduled").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusCompleted.IsActive())
	assert.False(t, StatusCanceled.IsActive())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestCanChange(t *testing.T) {
	// Keeping the current status is always fine.
	assert.NoError(t, CanChange(StatusPending, StatusPending))
	assert.NoError(t, CanChange(StatusConfirmed, StatusConfirmed))

	assert.NoError(t, CanChange(StatusPending, StatusConfirmed))
	assert.NoError(t, CanChange(StatusPending, StatusCanceled))
	assert.NoError(t, CanChange(StatusConfirmed, StatusCompleted))
	assert.NoError(t, CanChange(StatusConfirmed, StatusCanceled))

	// No shortcuts, no rollbacks, no resurrection.
	assert.Error(t, CanChange(StatusPending, StatusCompleted))
	assert.Error(t, CanChange(StatusConfirmed, StatusPending))
	assert.Error(t, CanChange(StatusCanceled, StatusConfirmed))
	assert.Error(t, CanChange(StatusCanceled, StatusPending))
	assert.Error(t, CanChange(StatusCompleted, StatusCanceled))
	assert.Error(t, CanChange(StatusPending, Status("unknown")))
}

func TestTransitionGuards(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCanceled))

	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusPending))
	assert.Error(t, CanComplete(StatusCompleted))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCanceled))
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)

	// Completed appointments stay completed.
	assert.Error(t, Cancel(ap, now))

	ap = &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCanceled), ap.Status)
	require.NotNil(t, ap.CanceledAt)
}
