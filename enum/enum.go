package enum

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Member is one named value of an [Enumeration].
type Member[V comparable] struct {
	Key   string
	Value V
}

// String returns the text of the member's value.
func (m Member[V]) String() string { return fmt.Sprint(m.Value) }

// MarshalJSON encodes the member as its value.
func (m Member[V]) MarshalJSON() ([]byte, error) { return json.Marshal(m.Value) }

// Enumeration is a registry of members, kept in definition order.
type Enumeration[V comparable] struct {
	name string

	mu      sync.RWMutex
	members []Member[V]
	byKey   map[string]int
	byValue map[V]int
}

// New creates an empty enumeration. name is used in error messages.
func New[V comparable](name string) *Enumeration[V] {
	return &Enumeration[V]{
		name:    name,
		byKey:   make(map[string]int),
		byValue: make(map[V]int),
	}
}

// Name returns the enumeration name.
func (e *Enumeration[V]) Name() string { return e.name }

// Define adds a member. Keys and values must both be unique.
func (e *Enumeration[V]) Define(key string, value V) (Member[V], error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.byKey[key]; ok {
		return Member[V]{}, fmt.Errorf("%w: %s.%s", ErrDuplicateMember, e.name, key)
	}
	if i, ok := e.byValue[value]; ok {
		return Member[V]{}, fmt.Errorf("%w: %s.%s has value %v of %s",
			ErrDuplicateMember, e.name, key, value, e.members[i].Key)
	}
	m := Member[V]{Key: key, Value: value}
	e.byKey[key] = len(e.members)
	e.byValue[value] = len(e.members)
	e.members = append(e.members, m)
	return m, nil
}

// MustDefine is like [Enumeration.Define] but panics on error. It is meant
// for package-level member declarations.
func (e *Enumeration[V]) MustDefine(key string, value V) Member[V] {
	m, err := e.Define(key, value)
	if err != nil {
		panic(err)
	}
	return m
}

// Members returns all members in definition order.
func (e *Enumeration[V]) Members() []Member[V] {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Member[V], len(e.members))
	copy(out, e.members)
	return out
}

// Values returns the value of every member in definition order.
func (e *Enumeration[V]) Values() []V {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]V, len(e.members))
	for i, m := range e.members {
		out[i] = m.Value
	}
	return out
}

// Keys returns the key of every member in definition order.
func (e *Enumeration[V]) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.members))
	for i, m := range e.members {
		out[i] = m.Key
	}
	return out
}

// MemberByKey returns the member defined under key, or
// [ErrUndefinedMember].
func (e *Enumeration[V]) MemberByKey(key string) (Member[V], error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.byKey[key]
	if !ok {
		return Member[V]{}, fmt.Errorf("%w: %s has no key %q", ErrUndefinedMember, e.name, key)
	}
	return e.members[i], nil
}

// MemberByValue returns the member holding value, or [ErrUndefinedMember].
func (e *Enumeration[V]) MemberByValue(value V) (Member[V], error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.byValue[value]
	if !ok {
		return Member[V]{}, fmt.Errorf("%w: %s has no value %v", ErrUndefinedMember, e.name, value)
	}
	return e.members[i], nil
}

// Has reports whether a member holds value.
func (e *Enumeration[V]) Has(value V) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.byValue[value]
	return ok
}
