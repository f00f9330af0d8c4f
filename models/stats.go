package models

import "time"

type AttendanceRank struct {
	Name               string    `json:"name"`
	Gender             Gender    `json:"gender,omitempty"`
	Category           Category  `json:"category"`
	TotalConfirmations int       `json:"total_confirmations"`
	LastConfirmedAt    time.Time `json:"last_confirmed_at"`
}

type GenderBreakdown struct {
	Confirmations int `json:"confirmations"`
	People        int `json:"people"`
}

type AttendanceSummary struct {
	TotalConfirmations int     `json:"total_confirmations"`
	UniquePeople       int     `json:"unique_people"`
	AveragePerPerson   float64 `json:"average_per_person"`
}

type AttendanceStats struct {
	Ranking  []AttendanceRank           `json:"ranking"`
	Summary  AttendanceSummary          `json:"summary"`
	ByGender map[Gender]GenderBreakdown `json:"by_gender"`
}
