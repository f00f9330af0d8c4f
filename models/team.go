package models

const (
	NumTeams   = 4
	MaxPerTeam = 6
)

// OpenSlotName is the display name of a placeholder entry padding an
// under-filled team when the roster itself is below MaxSeats.
const OpenSlotName = "Open Slot"

// TeamEntry is either a projection of a Confirmation or a placeholder.
type TeamEntry struct {
	Name        string   `json:"name"`
	Category    Category `json:"category,omitempty"`
	Gender      Gender   `json:"gender,omitempty"`
	Placeholder bool     `json:"placeholder,omitempty"`
}

type Team []TeamEntry

// TeamAssignment holds the NumTeams buckets of one draw, in fixed order.
// It is recomputed on every draw request and never persisted.
type TeamAssignment []Team
