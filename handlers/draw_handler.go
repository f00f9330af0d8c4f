package handlers

import (
	"net/http"

	"github.com/voleisexta/roster-system/services"
)

type DrawHandler struct {
	drawService *services.DrawService
}

func NewDrawHandler(drawService *services.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// Draw godoc
// @Summary Draw balanced teams from the confirmed roster
// @Tags draw
// @Description Shuffles the confirmed segment into 4 gender-balanced teams of up to 6. Under-filled teams get open-slot placeholders while the roster is below 24. Nothing is persisted; every call is a fresh draw.
// @Produce json
// @Success 200 {object} services.DrawResult "Teams and a share-ready message"
// @Failure 400 {object} map[string]string "Fewer than 4 confirmed players"
// @Router /confirmations/draw [get]
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	result, err := h.drawService.DrawTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
