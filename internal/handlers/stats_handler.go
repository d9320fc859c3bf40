package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/httpresp"
	"github.com/pawclinic/vet-scheduler/internal/usecase/stats"
)

type StatsHandler struct {
	dashboard *stats.GetDashboard
}

func NewStatsHandler(dashboard *stats.GetDashboard) *StatsHandler {
	return &StatsHandler{dashboard: dashboard}
}

// GET /stats/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to build dashboard")
		return
	}
	httpresp.OK(c, d)
}
