package errorvalues

import "errors"

var (
	ErrChallengeNotFound     = errors.New("challenge doesn't exist")
	ErrActiveChallengeExists = errors.New("user already has an active challenge")
	ErrWrongOwner            = errors.New("resource belongs to another user")
	ErrDateOutsideChallenge  = errors.New("date is outside of challenge window")
	ErrInvalidStatus         = errors.New("unknown challenge status")

	ErrCategoryNotFound = errors.New("category doesn't exist")
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrInvalidClock     = errors.New("time must be in HH:MM format")

	ErrMetricsNotFound   = errors.New("no metrics for this day")
	ErrInvalidReflection = errors.New("energy level must be between 1 and 5")

	ErrInvalidToken = errors.New("invalid token")
	ErrValidation   = errors.New("validation error")
)
