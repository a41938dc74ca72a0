package collections

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hasbyte1/go-types/arr"
)

// ToEnd passed as a length to [Collection.Slice] or [Collection.Splice]
// selects everything from the offset to the end of the collection.
const ToEnd = math.MaxInt

// Collection is a mutable, type-homogeneous ordered container.
//
// Every element has the Go type T, so the element kind ([KindOf]) is
// enforced at compile time for typed calls. Untyped input goes through
// [FromValues] or [Collection.AppendValue], which check it at runtime and
// report [ErrTypeMismatch].
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.From([]string{"a", "b", "c"})
//	c, err := collections.FromValues[int]([]any{1, "2", 3.0})
//
// # Keys
//
// Elements are addressed by position. Each element also carries a key,
// which equals its position unless the collection was produced by a
// key-preserving operation ([Collection.Filter], [Collection.SliceWithKeys],
// [Collection.ReverseWithKeys]). Any structural mutation re-indexes the keys
// to 0 … Count()-1; [Collection.Values] does the same on a copy.
//
// # Mutation
//
// Append, Insert, Remove, Splice, Unique, Merge, Sort and Each change the
// collection in place. Slice, Reverse, Filter, Map and Values return new
// collections and leave the receiver untouched.
//
// A Collection must not be mutated from several goroutines at once.
type Collection[T any] struct {
	items []T
	keys  []int
}

// IntCollection is a collection of integers.
type IntCollection = Collection[int]

// StringCollection is a collection of strings.
type StringCollection = Collection[string]

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// FromValues builds a Collection[T] from untyped values, checking each one
// against the element kind of T. Integer kinds accept any numeric input,
// including numeric strings such as "42" or "2.5", truncating fractions
// toward zero. String kinds accept strings only and object kinds accept
// values of type T only.
//
// The first non-conforming value aborts construction with [ErrTypeMismatch].
func FromValues[T any](values []any) (*Collection[T], error) {
	kind := KindOf[T]()
	items := make([]T, len(values))
	for i, v := range values {
		item, err := coerceTo[T](kind, v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = item
	}
	return &Collection[T]{items: items}, nil
}

// NewIntCollection creates an [IntCollection].
func NewIntCollection(items ...int) *IntCollection { return From(items) }

// NewStringCollection creates a [StringCollection].
func NewStringCollection(items ...string) *StringCollection { return From(items) }

func coerceTo[T any](kind Kind, v any) (T, error) {
	if item, ok := v.(T); ok {
		return item, nil
	}
	var zero T
	rv, err := kind.coerce(v)
	if err != nil {
		return zero, err
	}
	return rv.Interface().(T), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns the element kind of the collection.
func (c *Collection[T]) Kind() Kind { return KindOf[T]() }

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// Has reports whether index is a valid position in the collection.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// At returns the item at index.
//
// A negative index fails with [ErrInvalidArgument]; an index at or beyond
// Count() fails with [ErrIndexOutOfRange].
func (c *Collection[T]) At(index int) (T, error) {
	var zero T
	exists, err := c.IndexExists(index)
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.items[index], nil
}

// IndexExists reports whether index addresses an element.
// A negative index fails with [ErrInvalidArgument].
func (c *Collection[T]) IndexExists(index int) (bool, error) {
	if index < 0 {
		return false, fmt.Errorf("%w: index must be a non-negative integer, got %d", ErrInvalidArgument, index)
	}
	return index < len(c.items), nil
}

// First returns the first item, or false when the collection is empty.
func (c *Collection[T]) First() (T, bool) {
	return c.Get(0)
}

// Last returns the last item, or false when the collection is empty.
func (c *Collection[T]) Last() (T, bool) {
	return c.Get(len(c.items) - 1)
}

// Keys returns the keys of the collection in order.
func (c *Collection[T]) Keys() []int {
	keys := make([]int, len(c.items))
	for i := range keys {
		keys[i] = c.keyAt(i)
	}
	return keys
}

// Values returns a copy of the collection re-indexed with keys 0 … Count()-1.
func (c *Collection[T]) Values() *Collection[T] { return From(c.items) }

// Column extracts the value stored under key from every element.
//
// Elements must be maps with string keys, [Record] values, or structs (or
// pointers to structs, decoded by field name or `mapstructure` tag). Key may
// use dot notation to reach into nested maps. Elements lacking the key are
// skipped.
func (c *Collection[T]) Column(key string) []any {
	out := make([]any, 0, len(c.items))
	for _, item := range c.items {
		fields, ok := fieldsOf(item)
		if !ok || !arr.Has(fields, key) {
			continue
		}
		out = append(out, arr.Get(fields, key))
	}
	return out
}

// String joins the items with a comma. It implements [fmt.Stringer].
func (c *Collection[T]) String() string { return c.Implode(",") }

// Implode joins the items with glue. It returns "" when the element kind has
// no textual representation (see [Kind.Textual]).
func (c *Collection[T]) Implode(glue string) string {
	if !c.Kind().Textual() {
		return ""
	}
	return c.ImplodeWith(glue, func(item T) string { return fmt.Sprint(item) })
}

// ImplodeWith joins all items into a string using sep, converting each item
// with fn.
func (c *Collection[T]) ImplodeWith(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

func (c *Collection[T]) keyAt(i int) int {
	if c.keys == nil {
		return i
	}
	return c.keys[i]
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & search
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn with a pointer to every item and its key, in order.
// Writes through the pointer change the stored item.
func (c *Collection[T]) Each(fn func(item *T, key int)) {
	for i := range c.items {
		fn(&c.items[i], c.keyAt(i))
	}
}

// Find returns the first item for which fn returns true.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) {
	var zero T
	for _, item := range c.items {
		if fn(item) {
			return item, true
		}
	}
	return zero, false
}

// FindIndex returns the key of the first item for which fn returns true.
func (c *Collection[T]) FindIndex(fn func(T) bool) (int, bool) {
	for i, item := range c.items {
		if fn(item) {
			return c.keyAt(i), true
		}
	}
	return 0, false
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	_, ok := c.Find(fn)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (new collection)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fn(item) returns true. Keys of the
// kept items are preserved; call [Collection.Values] to re-index.
func (c *Collection[T]) Filter(fn func(T) bool) *Collection[T] {
	return c.filter(func(i int) bool { return fn(c.items[i]) })
}

// FilterKeys is [Collection.Filter] with the predicate receiving keys
// instead of values.
func (c *Collection[T]) FilterKeys(fn func(key int) bool) *Collection[T] {
	return c.filter(func(i int) bool { return fn(c.keyAt(i)) })
}

// FilterBoth is [Collection.Filter] with the predicate receiving both the
// value and its key.
func (c *Collection[T]) FilterBoth(fn func(item T, key int) bool) *Collection[T] {
	return c.filter(func(i int) bool { return fn(c.items[i], c.keyAt(i)) })
}

// Reject returns the items for which fn returns false.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T) bool) *Collection[T] {
	return c.Filter(func(item T) bool { return !fn(item) })
}

func (c *Collection[T]) filter(keep func(i int) bool) *Collection[T] {
	items := make([]T, 0, len(c.items))
	keys := make([]int, 0, len(c.items))
	for i, item := range c.items {
		if keep(i) {
			items = append(items, item)
			keys = append(keys, c.keyAt(i))
		}
	}
	return &Collection[T]{items: items, keys: keys}
}

// Map returns a new Collection[any] with each item transformed by fn.
// The result is not bound to the element kind of c.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (c *Collection[T]) Map(fn func(T) any) *Collection[any] {
	out := make([]any, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Collection[any]{items: out}
}

// Slice returns up to length items starting at offset, without touching c.
//
// A negative offset counts from the end. A negative length stops that many
// items before the end; [ToEnd] selects everything after offset.
// The result is re-indexed; see [Collection.SliceWithKeys].
func (c *Collection[T]) Slice(offset, length int) *Collection[T] {
	start, end := bounds(len(c.items), offset, length)
	return From(c.items[start:end])
}

// SliceWithKeys is [Collection.Slice] preserving the keys of the selected
// items.
func (c *Collection[T]) SliceWithKeys(offset, length int) *Collection[T] {
	start, end := bounds(len(c.items), offset, length)
	out := From(c.items[start:end])
	out.keys = c.Keys()[start:end]
	return out
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := From(c.items)
	slices.Reverse(out.items)
	return out
}

// ReverseWithKeys is [Collection.Reverse] with every item keeping its key.
func (c *Collection[T]) ReverseWithKeys() *Collection[T] {
	out := c.Reverse()
	out.keys = c.Keys()
	slices.Reverse(out.keys)
	return out
}

// Chunk splits the collection into consecutive groups of size, returning a
// plain [][]T. The last group may contain fewer than size items.
// Returns an empty [][]T if size <= 0 or the collection is empty.
func (c *Collection[T]) Chunk(size int) [][]T {
	return arr.Chunk(c.items, size)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation (in place)
// ─────────────────────────────────────────────────────────────────────────────

// Append adds items to the end of the collection and returns c.
func (c *Collection[T]) Append(items ...T) *Collection[T] {
	c.items = append(c.items, items...)
	c.keys = nil
	return c
}

// AppendValue appends an untyped value after checking it against the
// element kind, failing with [ErrTypeMismatch] if it does not conform.
func (c *Collection[T]) AppendValue(v any) error {
	item, err := coerceTo[T](c.Kind(), v)
	if err != nil {
		return err
	}
	c.Append(item)
	return nil
}

// Insert places item immediately after position index, shifting later
// items right. A negative index counts from the end, so Insert(-1, x)
// appends x. Positions that remain out of range after that are clamped:
// anything before the first element inserts at the front, anything past
// the last element appends.
func (c *Collection[T]) Insert(index int, item T) {
	n := len(c.items)
	if index < 0 {
		index += n
	}
	pos := min(max(index+1, 0), n)
	c.items = slices.Insert(c.items, pos, item)
	c.keys = nil
}

// Remove deletes the item at index, shifting later items left. A negative
// index counts from the end, so Remove(-1) drops the last item.
// It reports false, leaving c unchanged, when the index does not address
// an element.
func (c *Collection[T]) Remove(index int) bool {
	n := len(c.items)
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return false
	}
	c.items = slices.Delete(c.items, index, index+1)
	c.keys = nil
	return true
}

// Splice removes the range selected by offset and length (same rules as
// [Collection.Slice]), inserts replacement in its place, and returns the
// removed items as a new collection.
func (c *Collection[T]) Splice(offset, length int, replacement ...T) *Collection[T] {
	start, end := bounds(len(c.items), offset, length)
	removed := From(c.items[start:end])
	c.items = slices.Replace(c.items, start, end, replacement...)
	c.keys = nil
	return removed
}

// Unique keeps only the first occurrence of every distinct value and
// returns c. Values are compared by content: pointers are followed, and
// values holding slices or maps are compared with [reflect.DeepEqual].
func (c *Collection[T]) Unique() *Collection[T] {
	return c.UniqueBy(func(item T) any { return identity(item) })
}

// UniqueBy is [Collection.Unique] with fn extracting the comparison key.
// Keys that are not comparable with == are compared with
// [reflect.DeepEqual].
func (c *Collection[T]) UniqueBy(fn func(T) any) *Collection[T] {
	seen := newSeenSet(len(c.items))
	out := c.items[:0]
	for _, item := range c.items {
		if seen.add(fn(item)) {
			out = append(out, item)
		}
	}
	clear(c.items[len(out):])
	c.items = out
	c.keys = nil
	return c
}

// Merge appends every item of other, in order, and returns c. A nil other
// leaves c unchanged.
func (c *Collection[T]) Merge(other *Collection[T]) *Collection[T] {
	if other == nil {
		return c
	}
	return c.Append(other.items...)
}

// Sort orders the items in place with cmp (negative when a < b), keeping
// equal items in their original order.
//
// A nil cmp selects the natural order: numeric for integer and float kinds,
// lexical for string kinds, and CompareTo for types implementing
// [Comparable]. Sort reports false and leaves c unchanged when cmp is nil
// and T has no natural order.
func (c *Collection[T]) Sort(cmp func(a, b T) int) bool {
	if cmp == nil {
		cmp = naturalOrder[T]()
		if cmp == nil {
			return false
		}
	}
	slices.SortStableFunc(c.items, cmp)
	c.keys = nil
	return true
}

// bounds resolves a slice offset and length into [start, end) of n items.
func bounds(n, offset, length int) (int, int) {
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	offset = min(offset, n)
	var end int
	switch {
	case length < 0:
		end = max(n+length, offset)
	case length > n-offset:
		end = n
	default:
		end = offset + length
	}
	return offset, end
}
