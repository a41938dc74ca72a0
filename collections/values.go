package collections

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/crypto/blake2b"
)

// Comparable is implemented by element types with a natural order.
// CompareTo returns a negative number when the receiver sorts before other,
// zero when they are equal and a positive number otherwise.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// identity returns the value Unique compares: v itself, with pointers
// followed so that pointers to equal values match.
func identity(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// seenSet records distinct keys. Hashable keys are compared with ==;
// the rest are grouped by fingerprint and compared with reflect.DeepEqual.
type seenSet struct {
	hashed  map[any]struct{}
	buckets map[[blake2b.Size256]byte][]any
}

func newSeenSet(size int) *seenSet {
	return &seenSet{hashed: make(map[any]struct{}, size)}
}

// add reports whether k had not been seen before, recording it.
func (s *seenSet) add(k any) bool {
	if k == nil || reflect.ValueOf(k).Comparable() {
		if _, ok := s.hashed[k]; ok {
			return false
		}
		s.hashed[k] = struct{}{}
		return true
	}
	if s.buckets == nil {
		s.buckets = make(map[[blake2b.Size256]byte][]any)
	}
	fp := fingerprint(k)
	for _, other := range s.buckets[fp] {
		if reflect.DeepEqual(k, other) {
			return false
		}
	}
	s.buckets[fp] = append(s.buckets[fp], k)
	return true
}

// fingerprint hashes the JSON encoding of v. Deeply equal values encode
// alike, so it is a bucket key only; values JSON cannot encode share a
// bucket per type.
func fingerprint(v any) [blake2b.Size256]byte {
	b, err := json.Marshal(v)
	if err != nil {
		b = []byte(fmt.Sprintf("%T", v))
	}
	return blake2b.Sum256(b)
}

// naturalOrder returns the default comparison for T, or nil if T has none.
func naturalOrder[T any]() func(a, b T) int {
	var zero T
	if _, ok := any(zero).(Comparable[T]); ok {
		return func(a, b T) int { return any(a).(Comparable[T]).CompareTo(b) }
	}
	typ := reflect.TypeFor[T]()
	switch {
	case isUnsigned(typ):
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}
	case isIntegerType(typ):
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}
	case typ.Kind() == reflect.Float32 || typ.Kind() == reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}
	case typ.Kind() == reflect.String:
		return func(a, b T) int {
			return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}
	}
	return nil
}

// fieldsOf exposes v as a string-keyed map for column extraction.
func fieldsOf(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m.Map(), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	var fields map[string]any
	if err := mapstructure.Decode(rv.Interface(), &fields); err != nil {
		return nil, false
	}
	return fields, true
}
