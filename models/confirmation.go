package models

import "time"

type Category string

const (
	CategoryMonthlyMember Category = "monthly-member"
	CategoryDropIn        Category = "drop-in"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Confirmation is one person's attendance confirmation for the week.
// Records are never mutated after creation; the active set is totally
// ordered by ConfirmedAt with ID as the tiebreak.
type Confirmation struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Gender      Gender    `json:"gender,omitempty"`
	IsTest      bool      `json:"-"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
