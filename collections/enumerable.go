package collections

// Enumerable is the typed read surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// implementation without depending on the concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn with a pointer to every item and its key.
	Each(fn func(item *T, key int))

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T) bool) *Collection[T]

	// Find returns the first item for which fn returns true.
	Find(fn func(T) bool) (T, bool)

	// First returns the first item, or false when empty.
	First() (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Last returns the last item, or false when empty.
	Last() (T, bool)

	// Reject returns a new collection with items for which fn returns
	// true removed.
	Reject(fn func(T) bool) *Collection[T]
}

// Sequence is the element-type-agnostic view of a collection, returned by
// [Factory.CreateFromArray] where T is only known at runtime.
type Sequence interface {
	Kind() Kind
	Count() int
	Keys() []int
	String() string
}

var (
	_ Enumerable[int] = (*Collection[int])(nil)
	_ Sequence        = (*Collection[string])(nil)
)
