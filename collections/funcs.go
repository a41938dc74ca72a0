package collections

import "golang.org/x/exp/constraints"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something typed by another parameter.
// Go methods cannot introduce type parameters of their own.

// Number is the constraint accepted by [Sum].
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies fn to every item and its key and returns a new Collection[U].
//
//	labels := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, c.keyAt(i))
	}
	return &Collection[U]{items: out}
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, c.keyAt(i))
	}
	return result
}

// Pluck extracts a single field U from every item T.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Collection[U]{items: out}
}

// GroupBy groups items by the comparable key K extracted by fn.
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	for _, item := range c.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// ContainsValue reports whether c holds value.
func ContainsValue[T comparable](c *Collection[T], value T) bool {
	return c.Contains(func(item T) bool { return item == value })
}

// Sum adds up every item.
func Sum[T Number](c *Collection[T]) T {
	var total T
	for _, item := range c.items {
		total += item
	}
	return total
}
