package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// OWNERS
// ======================================================

type OwnerHandler struct {
	db *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{db: db}
}

type OwnerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
}

// GET /owners?last_name=...
func (h *OwnerHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Owner{}).Order("last_name ASC, first_name ASC")

	if lastName := strings.TrimSpace(c.Query("last_name")); lastName != "" {
		query = query.Where("last_name ILIKE ?", lastName+"%")
	}

	var owners []models.Owner
	if err := query.Find(&owners).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list owners")
		return
	}

	httpresp.List(c, owners)
}

// GET /owners/:id — owner with their pets.
func (h *OwnerHandler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "owner_not_found", "owner not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load owner")
		return
	}

	var pets []models.Pet
	if err := h.db.Where("owner_id = ?", id).Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load pets")
		return
	}

	httpresp.OK(c, gin.H{"owner": owner, "pets": pets})
}

func (h *OwnerHandler) Create(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	owner := models.Owner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Telephone: req.Telephone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.Create(&owner).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create owner")
		return
	}

	httpresp.Created(c, owner)
}

func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "owner_not_found", "owner not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load owner")
		return
	}

	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	owner.FirstName = req.FirstName
	owner.LastName = req.LastName
	owner.Address = req.Address
	owner.City = req.City
	owner.Telephone = req.Telephone
	owner.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.db.Save(&owner).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update owner")
		return
	}

	httpresp.OK(c, owner)
}
