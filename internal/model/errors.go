package model

import "errors"

// Common errors used across the application
var (
	// Construction errors
	ErrInvalidPlayerType = errors.New("invalid player type")
	ErrInvalidConfig     = errors.New("invalid game configuration")
	ErrUnknownStrategy   = errors.New("unknown strategy")

	// Play errors
	ErrInvalidDecisionInput = errors.New("invalid decision input")
	ErrGameComplete         = errors.New("game is already complete")

	// Storage errors
	ErrGameNotFound = errors.New("game not found")
)
