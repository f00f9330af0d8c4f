package handlers

import (
	"net/http"

	"github.com/voleisexta/roster-system/services"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// Confirm godoc
// @Summary Confirm attendance for the week
// @Tags roster
// @Description Registers a confirmation. Past the 24-seat cap the request is rejected; seed records bypass the cap and stay hidden from listings.
// @Accept json
// @Produce json
// @Param body body services.ConfirmInput true "Confirmation request"
// @Success 201 {object} map[string]interface{} "Confirmation with position and waitlist flag"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Roster full"
// @Failure 409 {object} map[string]string "Name already confirmed"
// @Router /confirmations [post]
func (h *RosterHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var input services.ConfirmInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.rosterService.Confirm(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"accepted":      true,
		"confirmation":  result.Confirmation,
		"position":      result.Position,
		"is_waitlisted": result.Waitlisted,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List godoc
// @Summary List the week's roster
// @Tags roster
// @Produce json
// @Success 200 {object} models.Roster "Confirmed and waitlist segments, ordered by confirmation time"
// @Router /confirmations [get]
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	roster, err := h.rosterService.GetRoster(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, roster, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Remove godoc
// @Summary Remove one confirmation by id
// @Tags roster
// @Produce json
// @Param id path int true "Confirmation ID"
// @Success 204 "Confirmation removed"
// @Failure 404 {object} map[string]string "Confirmation not found"
// @Security BearerAuth
// @Router /confirmations/{id} [delete]
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.rosterService.Remove(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveByName godoc
// @Summary Remove confirmations by name
// @Tags roster
// @Description Removes every confirmation matching the name case-insensitively, e.g. cleaning out seed records.
// @Produce json
// @Param name path string true "Confirmed name"
// @Success 200 {object} map[string]interface{} "Number of removed confirmations"
// @Failure 404 {object} map[string]string "No confirmation with that name"
// @Security BearerAuth
// @Router /confirmations/by-name/{name} [delete]
func (h *RosterHandler) RemoveByName(w http.ResponseWriter, r *http.Request) {
	name := getNameFromURL(r)
	deleted, err := h.rosterService.RemoveByName(r.Context(), name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"deleted": deleted}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Clear godoc
// @Summary Clear the roster for the next week
// @Tags roster
// @Description Deletes every active confirmation. With archiving configured the outgoing roster is stored first.
// @Produce json
// @Success 200 {object} map[string]interface{} "Number of removed confirmations"
// @Security BearerAuth
// @Router /confirmations [delete]
func (h *RosterHandler) Clear(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.rosterService.Clear(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"deleted": deleted}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
