package collections

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// KindTag classifies the element type of a collection.
type KindTag int

const (
	// Integer covers every Go integer type (int, int8 … uint64).
	Integer KindTag = iota
	// String covers string and any type whose underlying type is string.
	String
	// Object covers every other element type, identified by its type name.
	Object
)

// String returns the tag name: "int", "string" or "object".
func (t KindTag) String() string {
	switch t {
	case Integer:
		return "int"
	case String:
		return "string"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Kind describes the single element type every member of a [Collection]
// must satisfy.
type Kind struct {
	Tag  KindTag
	Name string

	typ reflect.Type
}

// IntegerKind and StringKind are the two scalar element kinds.
var (
	IntegerKind = Kind{Tag: Integer, Name: "int", typ: reflect.TypeFor[int]()}
	StringKind  = Kind{Tag: String, Name: "string", typ: reflect.TypeFor[string]()}
)

// ObjectKind returns a named object kind. A Kind built this way carries no
// Go type and accepts nothing at runtime; use [KindOf] for a usable kind.
func ObjectKind(name string) Kind {
	return Kind{Tag: Object, Name: name}
}

// KindOf derives the element kind of T.
func KindOf[T any]() Kind {
	typ := reflect.TypeFor[T]()
	switch {
	case isIntegerType(typ):
		return Kind{Tag: Integer, Name: typ.String(), typ: typ}
	case typ.Kind() == reflect.String:
		return Kind{Tag: String, Name: typ.String(), typ: typ}
	default:
		return Kind{Tag: Object, Name: typ.String(), typ: typ}
	}
}

// String returns the kind name, e.g. "int", "string" or "dates.Date".
func (k Kind) String() string { return k.Name }

// Textual reports whether elements of this kind have a textual
// representation that [Collection.Implode] can join.
func (k Kind) Textual() bool {
	switch k.Tag {
	case Integer, String:
		return true
	}
	if k.typ == nil {
		return false
	}
	switch k.typ.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Bool:
		return true
	}
	return k.typ.Implements(stringerType)
}

// Structured reports whether elements of this kind can be built from a
// record: a struct or a pointer to a struct.
func (k Kind) Structured() bool {
	if k.Tag != Object || k.typ == nil {
		return false
	}
	t := k.typ
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// Accepts reports whether v satisfies the kind. Integer kinds accept any
// numeric value that fits in an int64, including numeric strings; fractions
// are truncated toward zero.
func (k Kind) Accepts(v any) bool {
	_, err := k.coerce(v)
	return err == nil
}

// coerce converts v into a value of the kind's Go type.
func (k Kind) coerce(v any) (reflect.Value, error) {
	if k.typ == nil {
		return reflect.Value{}, fmt.Errorf("%w: kind %s has no element type", ErrTypeMismatch, k.Name)
	}
	if v == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil is not %s", ErrTypeMismatch, k.Name)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == k.typ || (k.Tag == Object && rv.Type().AssignableTo(k.typ)) {
		return rv, nil
	}
	switch k.Tag {
	case Integer:
		n, err := toInt64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(k.typ).Elem()
		if isUnsigned(k.typ) {
			if n < 0 || out.OverflowUint(uint64(n)) {
				return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, n, k.Name)
			}
			out.SetUint(uint64(n))
			return out, nil
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, n, k.Name)
		}
		out.SetInt(n)
		return out, nil
	case String:
		if rv.Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("%w: %T(%v) is not a string", ErrTypeMismatch, v, v)
		}
		return rv.Convert(k.typ), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %T is not %s", ErrTypeMismatch, v, k.Name)
	}
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func isIntegerType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isUnsigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// toInt64 converts a numeric v to an integer, truncating any fraction
// toward zero. Decimal strings in integer, fractional or exponent notation
// count as numeric. Values outside the int64 range overflow.
func toInt64(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return rv.Int(), nil
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, overflows(v)
		}
		return int64(u), nil
	case rv.CanFloat():
		return truncate(v, rv.Float())
	case rv.Kind() == reflect.String:
		s := strings.TrimSpace(rv.String())
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		switch {
		case errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0):
			return 0, overflows(v)
		case errors.Is(err, strconv.ErrRange):
		case err != nil, math.IsNaN(f), math.IsInf(f, 0):
			return 0, notNumeric(v)
		}
		return truncate(v, f)
	}
	return 0, notNumeric(v)
}

func truncate(v any, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notNumeric(v)
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, overflows(v)
	}
	return int64(f), nil
}

func overflows(v any) error {
	return fmt.Errorf("%w: %v overflows int64", ErrTypeMismatch, v)
}

func notNumeric(v any) error {
	return fmt.Errorf("%w: %T(%v) is not numeric", ErrTypeMismatch, v, v)
}
