package dates

import "errors"

// Sentinel errors returned by date operations.
var (
	// ErrInvalidDate is returned when a string does not match any of the
	// accepted layouts.
	ErrInvalidDate = errors.New("dates: value does not represent a valid date")

	// ErrInvalidArgument is returned when a day, month or other numeric
	// argument falls outside its allowed range.
	ErrInvalidArgument = errors.New("dates: invalid argument")
)
