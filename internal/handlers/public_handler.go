package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/models"
	uc "github.com/pawclinic/vet-scheduler/internal/usecase/appointment"
)

// ======================================================
// PUBLIC BOOKING SURFACE
// ======================================================

// PublicHandler serves the unauthenticated booking flow: browse vets,
// check availability, submit a booking. Submissions are idempotent so
// a retried form post never double-books.
type PublicHandler struct {
	db      *gorm.DB
	booking *uc.CreateAppointmentIdempotent
	slots   *uc.GetAvailableSlots

	tz string
}

func NewPublicHandler(
	db *gorm.DB,
	booking *uc.CreateAppointmentIdempotent,
	slots *uc.GetAvailableSlots,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		db:      db,
		booking: booking,
		slots:   slots,
		tz:      tz,
	}
}

// GET /public/vets
func (h *PublicHandler) ListVets(c *gin.Context) {
	var vets []models.Vet
	if err := h.db.Order("last_name ASC, first_name ASC").Find(&vets).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list vets")
		return
	}
	httpresp.List(c, vets)
}

// GET /public/vets/:id/available-slots?date=YYYY-MM-DD
func (h *PublicHandler) AvailableSlots(c *gin.Context) {
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

type PublicBookingRequest struct {
	VetID uint   `json:"vet_id" binding:"required"`
	PetID uint   `json:"pet_id" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Slot  string `json:"time_slot" binding:"required"`
	Notes string `json:"notes"`
}

// POST /public/bookings
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseClinicDate(req.Date, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	ap, err := h.booking.Execute(
		c.Request.Context(),
		req.VetID,
		req.PetID,
		date,
		domain.TimeSlot(req.Slot),
		req.Notes,
	)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"reference": ap.Reference,
		"date":      ap.AppointmentDate.Format(dateLayout),
		"time_slot": ap.TimeSlot,
		"status":    ap.Status,
	})
}
