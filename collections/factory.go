package collections

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// KindName identifies a collection specialization registered with a
// [Factory].
type KindName string

// Collection kinds registered by [NewDefaultFactory].
const (
	IntCollectionKind    KindName = "int"
	StringCollectionKind KindName = "string"
)

// Constructor builds a collection from raw records. The result must be a
// *Collection[T] for some T.
type Constructor func(records []Record) (Sequence, error)

// RecordUnmarshaler is implemented by element types that build themselves
// from a record instead of relying on field-name decoding.
type RecordUnmarshaler interface {
	UnmarshalRecord(r Record) error
}

// Factory is a registry of collection constructors keyed by [KindName].
//
// Populate it once at startup with [RegisterKind] or [Factory.Register],
// then call [Factory.CreateFromArray] (or the typed [CreateFromArray]) to
// turn raw records into collections:
//
//	f := collections.NewDefaultFactory()
//	_ = collections.RegisterKind[User](f, "users")
//
//	ids, _ := collections.CreateFromArray[int](f, collections.IntCollectionKind,
//	    []collections.Record{collections.Row(1), collections.Row(2)})
//
// All Factory methods are safe for concurrent use.
type Factory struct {
	mu    sync.RWMutex
	kinds map[KindName]Constructor
}

// NewFactory creates an empty Factory.
func NewFactory() *Factory {
	return &Factory{kinds: make(map[KindName]Constructor)}
}

// NewDefaultFactory creates a Factory with [IntCollectionKind] and
// [StringCollectionKind] registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	_ = RegisterKind[int](f, IntCollectionKind)
	_ = RegisterKind[string](f, StringCollectionKind)
	return f
}

// Register adds or replaces the constructor for name.
func (f *Factory) Register(name KindName, ctor Constructor) error {
	if name == "" {
		return ErrEmptyKindName
	}
	if ctor == nil {
		return ErrNilConstructor
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds[name] = ctor
	return nil
}

// Has reports whether a constructor is registered under name.
func (f *Factory) Has(name KindName) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.kinds[name]
	return ok
}

// Kinds returns the registered kind names in sorted order.
func (f *Factory) Kinds() []KindName {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]KindName, 0, len(f.kinds))
	for name := range f.kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateFromArray builds the collection registered under name from records.
//
// An unregistered name fails with [ErrInvalidArgument] (wrapping
// [ErrKindNotRegistered]). Nil records yield an empty collection. Each
// record is dispatched on the element kind:
//
//   - integer kinds take the record's first field if it is numeric;
//   - string kinds take the record's first field if it is a string;
//   - struct kinds decode the whole record into a new element.
//
// The first record that fits none of these aborts the call with
// [ErrInvalidArgument] and no collection is returned.
func (f *Factory) CreateFromArray(name KindName, records []Record) (Sequence, error) {
	f.mu.RLock()
	ctor, ok := f.kinds[name]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrKindNotRegistered, name)
	}
	return ctor(records)
}

// RegisterKind registers a constructor for Collection[T] under name.
// T must be an integer type, a string type, or a struct (or pointer to
// struct); anything else fails with [ErrInvalidArgument].
func RegisterKind[T any](f *Factory, name KindName) error {
	kind := KindOf[T]()
	if kind.Tag == Object && !kind.Structured() && !implementsRecordUnmarshaler(kind) {
		return fmt.Errorf("%w: %s elements cannot be built from a record", ErrInvalidArgument, kind)
	}
	return f.Register(name, Builder[T](name))
}

// Builder returns the [Constructor] used by [RegisterKind].
func Builder[T any](name KindName) Constructor {
	kind := KindOf[T]()
	return func(records []Record) (Sequence, error) {
		c := Empty[T]()
		for i, r := range records {
			item, err := buildElement[T](kind, r)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d does not fit %s:%s: %w",
					ErrInvalidArgument, i, name, kind, err)
			}
			c.items = append(c.items, item)
		}
		return c, nil
	}
}

// CreateFromArray is the typed form of [Factory.CreateFromArray]. It fails
// with [ErrTypeMismatch] if name is registered for a different element type.
func CreateFromArray[T any](f *Factory, name KindName, records []Record) (*Collection[T], error) {
	seq, err := f.CreateFromArray(name, records)
	if err != nil {
		return nil, err
	}
	c, ok := seq.(*Collection[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %s, not %s", ErrTypeMismatch, name, seq.Kind(), KindOf[T]())
	}
	return c, nil
}

func buildElement[T any](kind Kind, r Record) (T, error) {
	var zero T
	switch kind.Tag {
	case Integer, String:
		first, ok := r.First()
		if !ok {
			return zero, fmt.Errorf("%w: empty record", ErrTypeMismatch)
		}
		return coerceTo[T](kind, first)
	}
	target := reflect.New(kind.typ)
	if kind.typ.Kind() == reflect.Pointer {
		target.Elem().Set(reflect.New(kind.typ.Elem()))
		if err := decodeRecord(r, target.Elem().Interface()); err != nil {
			return zero, err
		}
	} else if err := decodeRecord(r, target.Interface()); err != nil {
		return zero, err
	}
	return target.Elem().Interface().(T), nil
}

// decodeRecord fills ptr, a pointer to a struct, from r.
func decodeRecord(r Record, ptr any) error {
	if u, ok := ptr.(RecordUnmarshaler); ok {
		return u.UnmarshalRecord(r)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           ptr,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(r.Map())
}

func implementsRecordUnmarshaler(kind Kind) bool {
	if kind.typ == nil {
		return false
	}
	t := kind.typ
	if t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}
	return t.Implements(reflect.TypeFor[RecordUnmarshaler]())
}
