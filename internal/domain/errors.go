package domain

import "errors"

var (
	// ErrNotFound is returned when an id lookup finds nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for caller contract violations
	// (bad enum value, non-positive page size, malformed cursor).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLandlordMissing is returned when a property references a landlord
	// that is not in the reference set.
	ErrLandlordMissing = errors.New("landlord missing")
)
