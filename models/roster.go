package models

// MaxSeats is the weekly roster cap. Confirmations past the cap survive as
// the waitlist, still ordered by confirmation time.
const MaxSeats = 24

type Roster struct {
	Confirmed []*Confirmation `json:"confirmed"`
	Waitlist  []*Confirmation `json:"waitlist"`
}
