package services

import "errors"

// Shared errors used across services and the HTTP mapping.
var (
	// Validation failures
	ErrNameRequired     = errors.New("name is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidCategory  = errors.New("invalid category provided")
	ErrInvalidGender    = errors.New("invalid gender provided")

	// Admission rules
	ErrNameAlreadyConfirmed = errors.New("name is already confirmed")
	ErrRosterFull           = errors.New("roster is full")

	// Lookup failures
	ErrConfirmationNotFound = errors.New("confirmation not found")

	// Draw rules
	ErrNotEnoughPlayers = errors.New("not enough confirmed players for a draw")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid admin password")
)
