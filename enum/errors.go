package enum

import "errors"

// Sentinel errors returned by enumeration lookups and definitions.
var (
	// ErrUndefinedMember is returned when no member has the requested key
	// or value.
	ErrUndefinedMember = errors.New("enum: undefined member")

	// ErrDuplicateMember is returned by [Enumeration.Define] when the key
	// or the value is already taken.
	ErrDuplicateMember = errors.New("enum: duplicate member")
)
