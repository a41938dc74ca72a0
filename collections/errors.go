package collections

import "errors"

// Sentinel errors returned by Collection and Factory operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := c.At(5)
//	if errors.Is(err, collections.ErrIndexOutOfRange) {
//	    // ...
//	}
var (
	// ErrTypeMismatch is returned when a value does not satisfy the element
	// kind of the collection it is being added to.
	ErrTypeMismatch = errors.New("collections: element does not match the collection kind")

	// ErrInvalidArgument is returned for malformed arguments, such as a
	// negative index passed to At or IndexExists, or an unknown kind passed
	// to the factory.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrKindNotRegistered is returned by the factory when no constructor is
	// registered under the requested kind name. It is always reported
	// together with ErrInvalidArgument.
	ErrKindNotRegistered = errors.New("collections: collection kind not registered")

	// ErrEmptyKindName is returned by [Factory.Register] for an empty name.
	ErrEmptyKindName = errors.New("collections: kind name must not be empty")

	// ErrNilConstructor is returned by [Factory.Register] for a nil constructor.
	ErrNilConstructor = errors.New("collections: constructor must not be nil")

	// ErrInvalidRecord is returned by [ParseRecords] when a document entry is
	// neither a mapping nor a sequence.
	ErrInvalidRecord = errors.New("collections: invalid record")
)
