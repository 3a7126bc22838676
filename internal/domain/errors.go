package domain

import "errors"

var (
	// ErrInsufficientSlots requested headcount exceeds the tour's remaining slots
	ErrInsufficientSlots = errors.New("domain: not enough available slots")

	// ErrInvalidTransition booking status change is not allowed by the state machine
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrInvalidHeadcount booking headcount is below the minimum
	ErrInvalidHeadcount = errors.New("domain: headcount must be at least 1")

	// ErrInvalidReviewTarget review must reference exactly one of tour or hotel
	ErrInvalidReviewTarget = errors.New("domain: review must target exactly one tour or hotel")

	// ErrInvalidRating rating outside of 1..5
	ErrInvalidRating = errors.New("domain: rating must be between 1 and 5")

	// ErrInvalidTour tour attributes violate catalog invariants
	ErrInvalidTour = errors.New("domain: invalid tour")
)
