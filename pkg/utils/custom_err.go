package utils

import "errors"

var (
	ErrItineraryNotFound     = errors.New("itinerary not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
	ErrTripTooLong           = errors.New("trip length exceeds the 30-day limit")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")
	ErrEnrichmentUnavailable = errors.New("geo enrichment unavailable")
)
