package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// PETS
// ======================================================

type PetHandler struct {
	db *gorm.DB
	tz string
}

func NewPetHandler(db *gorm.DB, tz string) *PetHandler {
	return &PetHandler{db: db, tz: tz}
}

type PetRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required"`
	BirthDate string `json:"birth_date"`
}

// POST /owners/:id/pets
func (h *PetHandler) Create(c *gin.Context) {
	ownerID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, ownerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "owner_not_found", "owner not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load owner")
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	birthDate, err := h.parseBirthDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "birth_date must be YYYY-MM-DD")
		return
	}

	pet := models.Pet{
		OwnerID:   ownerID,
		Name:      req.Name,
		Type:      req.Type,
		BirthDate: birthDate,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create pet")
		return
	}

	httpresp.Created(c, pet)
}

// GET /pets/:id
func (h *PetHandler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var pet models.Pet
	if err := h.db.Preload("Owner").First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "pet not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load pet")
		return
	}

	httpresp.OK(c, pet)
}

// PUT /pets/:id
func (h *PetHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "pet not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load pet")
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	birthDate, err := h.parseBirthDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "birth_date must be YYYY-MM-DD")
		return
	}

	pet.Name = req.Name
	pet.Type = req.Type
	pet.BirthDate = birthDate

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update pet")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseClinicDate(value, h.tz)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
