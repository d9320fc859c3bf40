package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, limit, offset := pageParams(c, 50, 200)

	query := h.db.Model(&models.AuditLog{})

	if action != "" {
		query = query.Where("action = ?", action)
	}
	if entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD")
			return
		}
		query = query.Where("created_at >= ?", from)
	}
	if toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD")
			return
		}
		query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to count audit logs")
		return
	}

	var logs []models.AuditLog
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list audit logs")
		return
	}

	c.JSON(200, gin.H{
		"data":  logs,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}
