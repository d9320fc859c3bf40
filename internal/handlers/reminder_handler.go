package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/reminder"
)

type ReminderHandler struct {
	dispatcher *reminder.Dispatcher
}

func NewReminderHandler(dispatcher *reminder.Dispatcher) *ReminderHandler {
	return &ReminderHandler{dispatcher: dispatcher}
}

// POST /reminders/run — manual trigger for the upcoming-appointment
// reminder sweep. The scheduled ticker runs the same code path.
func (h *ReminderHandler) Run(c *gin.Context) {
	notified, err := h.dispatcher.Run(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "reminder run failed")
		return
	}
	httpresp.OK(c, gin.H{"notified": notified})
}
