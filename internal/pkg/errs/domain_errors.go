package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Property errors
	ErrPropertyIDRequired = errors.New("property id is required")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrPropertyFetch      = errors.New("failed to fetch property")

	// Review errors
	ErrReviewFetch = errors.New("failed to fetch reviews")

	// Booking errors
	ErrBookingValidation = errors.New("booking form validation failed")
	ErrMissingDates      = errors.New("check-in and check-out dates are required")
)
