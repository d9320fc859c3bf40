package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	uc "github.com/pawclinic/vet-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	schedule    *uc.ListSchedule
	slots       *uc.GetAvailableSlots
	weeklyStats *uc.GetWeeklyStats

	tz string
}

func NewScheduleHandler(
	schedule *uc.ListSchedule,
	slots *uc.GetAvailableSlots,
	weeklyStats *uc.GetWeeklyStats,
	tz string,
) *ScheduleHandler {
	return &ScheduleHandler{
		schedule:    schedule,
		slots:       slots,
		weeklyStats: weeklyStats,
		tz:          tz,
	}
}

// ======================================================
// QUERIES
// ======================================================

// GET /vets/:id/schedule?date=YYYY-MM-DD
func (h *ScheduleHandler) ByVetAndDate(c *gin.Context) {
	vetID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	date, err := parseClinicDate(c.Query("date"), h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	items, err := h.schedule.ByVetAndDate(c.Request.Context(), vetID, date)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list schedule")
		return
	}

	httpresp.List(c, items)
}

// GET /vets/:id/week?date=YYYY-MM-DD
func (h *ScheduleHandler) ByVetAndWeek(c *gin.Context) {
	vetID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	date, err := parseClinicDate(c.Query("date"), h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	items, weekStart, weekEnd, err := h.schedule.ByVetAndWeek(c.Request.Context(), vetID, date)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list week schedule")
		return
	}

	c.JSON(200, gin.H{
		"week_start": weekStart.Format(dateLayout),
		"week_end":   weekEnd.Format(dateLayout),
		"data":       items,
		"count":      len(items),
	})
}

// GET /appointments/day?date=YYYY-MM-DD
func (h *ScheduleHandler) ByDate(c *gin.Context) {
	date, err := parseClinicDate(c.Query("date"), h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	items, err := h.schedule.ByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list day schedule")
		return
	}

	httpresp.List(c, items)
}

// GET /owners/:id/appointments
func (h *ScheduleHandler) ByOwner(c *gin.Context) {
	ownerID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	items, err := h.schedule.ByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list owner appointments")
		return
	}

	httpresp.List(c, items)
}

// GET /vets/:id/available-slots?date=YYYY-MM-DD
func (h *ScheduleHandler) AvailableSlots(c *gin.Context) {
	vetID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	date, err := parseClinicDate(c.Query("date"), h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	free, err := h.slots.Execute(c.Request.Context(), vetID, date)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to compute availability")
		return
	}

	httpresp.List(c, free)
}

// GET /vets/:id/weekly-stats?date=YYYY-MM-DD
func (h *ScheduleHandler) WeeklyStats(c *gin.Context) {
	vetID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	date, err := parseClinicDate(c.Query("date"), h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	stats, err := h.weeklyStats.Execute(c.Request.Context(), vetID, date)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to compute weekly stats")
		return
	}

	httpresp.OK(c, stats)
}
