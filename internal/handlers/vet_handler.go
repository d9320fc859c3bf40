package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// VETS
// ======================================================

type VetHandler struct {
	db *gorm.DB
}

func NewVetHandler(db *gorm.DB) *VetHandler {
	return &VetHandler{db: db}
}

type VetRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Specialty string `json:"specialty"`
}

// GET /vets?page=1&limit=5
func (h *VetHandler) List(c *gin.Context) {
	page, limit, offset := pageParams(c, 5, 100)

	var total int64
	if err := h.db.Model(&models.Vet{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to count vets")
		return
	}

	var vets []models.Vet
	err := h.db.
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&vets).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list vets")
		return
	}

	c.JSON(200, gin.H{
		"data":  vets,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (h *VetHandler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var vet models.Vet
	if err := h.db.First(&vet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "vet_not_found", "vet not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to load vet")
		return
	}

	httpresp.OK(c, vet)
}

func (h *VetHandler) Create(c *gin.Context) {
	var req VetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	vet := models.Vet{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Specialty: req.Specialty,
	}

	if err := h.db.Create(&vet).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create vet")
		return
	}

	httpresp.Created(c, vet)
}
