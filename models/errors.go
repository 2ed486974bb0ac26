package models

import "errors"

var (
	// ErrMalformedTicket is returned when an upstream ticket record is missing a required field
	// or carries a value outside its domain.
	ErrMalformedTicket = errors.New("malformed ticket")

	// ErrMalformedUser is returned when an upstream user record is missing its id.
	ErrMalformedUser = errors.New("malformed user")

	// ErrInvalidGroupBy is returned for a grouping mode other than status, priority or user.
	ErrInvalidGroupBy = errors.New("invalid grouping")

	// ErrInvalidSortBy is returned for an ordering other than priority or title.
	ErrInvalidSortBy = errors.New("invalid ordering")

	// ErrSnapshotNotLoaded is returned when the board is requested before the snapshot was fetched.
	ErrSnapshotNotLoaded = errors.New("snapshot not loaded")
)
