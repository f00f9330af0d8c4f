package handlers

import (
	"net/http"

	"github.com/voleisexta/roster-system/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats godoc
// @Summary Attendance statistics
// @Tags stats
// @Description Per-person confirmation ranking, an overall summary and a per-gender breakdown over the active roster.
// @Produce json
// @Success 200 {object} models.AttendanceStats
// @Router /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
