package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// VISITS
// ======================================================

type VisitHandler struct {
	db *gorm.DB
	tz string
}

func NewVisitHandler(db *gorm.DB, tz string) *VisitHandler {
	return &VisitHandler{db: db, tz: tz}
}

type VisitRequest struct {
	VisitDate   string `json:"visit_date" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// POST /pets/:id/visits
func (h *VisitHandler) Create(c *gin.Context) {
	petID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, petID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "pet not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load pet")
		return
	}

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	visitDate, err := parseClinicDate(req.VisitDate, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_visit_date", "visit_date must be YYYY-MM-DD")
		return
	}

	visit := models.Visit{
		PetID:       petID,
		VisitDate:   visitDate,
		Description: req.Description,
	}

	if err := h.db.Create(&visit).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create visit")
		return
	}

	httpresp.Created(c, visit)
}

// PUT /pets/:id/visits/:visitId
func (h *VisitHandler) Update(c *gin.Context) {
	petID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	visitID, ok := uintParam(c, "visitId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "visitId must be a positive integer")
		return
	}

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	visitDate, err := parseClinicDate(req.VisitDate, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_visit_date", "visit_date must be YYYY-MM-DD")
		return
	}

	var visit models.Visit
	if err := h.db.Where("pet_id = ?", petID).First(&visit, visitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "visit_not_found", "visit not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load visit")
		return
	}

	visit.VisitDate = visitDate
	visit.Description = req.Description

	if err := h.db.Save(&visit).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update visit")
		return
	}

	httpresp.OK(c, visit)
}

// DELETE /pets/:id/visits/:visitId
func (h *VisitHandler) Delete(c *gin.Context) {
	petID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	visitID, ok := uintParam(c, "visitId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "visitId must be a positive integer")
		return
	}

	var visit models.Visit
	if err := h.db.Where("pet_id = ?", petID).First(&visit, visitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "visit_not_found", "visit not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load visit")
		return
	}

	if err := h.db.Delete(&visit).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to delete visit")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// GET /pets/:id/visits
func (h *VisitHandler) ListByPet(c *gin.Context) {
	petID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var visits []models.Visit
	err := h.db.
		Where("pet_id = ?", petID).
		Order("visit_date DESC, id DESC").
		Find(&visits).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list visits")
		return
	}

	httpresp.List(c, visits)
}
