package apperrors

import "errors"

// Standardized domain errors. Controllers map these to HTTP status codes.
var (
	ErrInvalidProduct         = errors.New("invalid product")
	ErrInvalidOffer           = errors.New("invalid offer")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrOfferNotImproved       = errors.New("offer not improved")
	ErrNotFound               = errors.New("not found")
	ErrVersionConflict        = errors.New("version conflict")
)
