package handler

import (
	"github.com/gin-gonic/gin"

	"sofdesk/internal/service"
)

// StatsHandler handles stats endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats
// @Summary Get system statistics
// @Description Aggregate counts for parsed SOFs, stored files, voyages, chat messages, and laytime breaches
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.SystemStats} "Aggregate statistics"
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetSystemStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
