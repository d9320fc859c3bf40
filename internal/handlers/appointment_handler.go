package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/models"
	uc "github.com/pawclinic/vet-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *uc.CreateAppointment
	update     *uc.UpdateAppointment
	transition *uc.TransitionAppointment
	batch      *uc.BatchTransition
	deleteUC   *uc.DeleteAppointment
	schedule   *uc.ListSchedule

	tz string
}

func NewAppointmentHandler(
	create *uc.CreateAppointment,
	update *uc.UpdateAppointment,
	transition *uc.TransitionAppointment,
	batch *uc.BatchTransition,
	deleteUC *uc.DeleteAppointment,
	schedule *uc.ListSchedule,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		update:     update,
		transition: transition,
		batch:      batch,
		deleteUC:   deleteUC,
		schedule:   schedule,
		tz:         tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	VetID  uint   `json:"vet_id" binding:"required"`
	PetID  uint   `json:"pet_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Slot   string `json:"time_slot" binding:"required"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	VetID   uint   `json:"vet_id" binding:"required"`
	PetID   uint   `json:"pet_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Slot    string `json:"time_slot" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Notes   string `json:"notes"`
	Version int    `json:"version" binding:"required"`
}

type BatchIDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// ======================================================
// CRUD
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseClinicDate(req.Date, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	status := domain.Status(req.Status)
	if req.Status == "" {
		status = domain.InitialStatus()
	}

	ap, err := h.create.Execute(c.Request.Context(), uc.CreateAppointmentInput{
		VetID:  req.VetID,
		PetID:  req.PetID,
		Date:   date,
		Slot:   domain.TimeSlot(req.Slot),
		Status: status,
		Notes:  req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	ap, err := h.schedule.ByID(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseClinicDate(req.Date, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), uc.UpdateAppointmentInput{
		ID:      id,
		VetID:   req.VetID,
		PetID:   req.PetID,
		Date:    date,
		Slot:    domain.TimeSlot(req.Slot),
		Status:  domain.Status(req.Status),
		Notes:   req.Notes,
		Version: req.Version,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transitionOne(c, h.transition.Confirm)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transitionOne(c, h.transition.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transitionOne(c, h.transition.Cancel)
}

func (h *AppointmentHandler) transitionOne(
	c *gin.Context,
	fn func(ctx context.Context, id uint) (*models.Appointment, error),
) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	ap, err := fn(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// BATCH
// ======================================================

func (h *AppointmentHandler) BatchConfirm(c *gin.Context) {
	h.batchTransition(c, h.batch.Confirm)
}

func (h *AppointmentHandler) BatchCancel(c *gin.Context) {
	h.batchTransition(c, h.batch.Cancel)
}

func (h *AppointmentHandler) batchTransition(
	c *gin.Context,
	fn func(ctx context.Context, ids []uint) (int, error),
) {
	var req BatchIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	count, err := fn(c.Request.Context(), req.IDs)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"updated": count})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "unexpected error")
		return
	}

	switch code {
	case "slot_taken", "stale_write":
		httperr.Conflict(c, code, businessMessage(code))
	case "appointment_not_found", "vet_not_found", "pet_not_found":
		httperr.NotFound(c, code, businessMessage(code))
	default:
		httperr.BadRequest(c, code, businessMessage(code))
	}
}

func businessMessage(code string) string {
	switch code {
	case "slot_taken":
		return "the time slot is already booked for this vet"
	case "stale_write":
		return "the appointment was modified by someone else, reload and retry"
	case "appointment_not_found":
		return "appointment not found"
	case "vet_not_found":
		return "vet not found"
	case "pet_not_found":
		return "pet not found"
	case "past_date":
		return "appointments cannot be booked in the past"
	case "invalid_time_slot":
		return "time slot is not in the clinic catalog"
	case "invalid_state":
		return "the appointment status does not allow this transition"
	default:
		return code
	}
}
