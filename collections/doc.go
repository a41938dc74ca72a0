// Package collections provides typed collections: ordered, mutable
// containers whose elements all share one declared element kind, plus a
// factory that builds them from raw, untyped records.
//
// # Overview
//
// The central type is [Collection][T]. Its element kind ([Kind]) is derived
// from T: integer types, string types, or a named object type.
//
//	c := collections.NewIntCollection(3, 1, 2)
//	c.Insert(-1, 4)              // [3 1 2 4]
//	c.Remove(0)                  // [1 2 4]
//	c.Sort(nil)                  // natural order
//	fmt.Println(c)               // 1,2,4
//
// Values that arrive untyped are checked at runtime:
//
//	_, err := collections.FromValues[string]([]any{"a", 42})
//	errors.Is(err, collections.ErrTypeMismatch) // true
//
// # Indexes
//
// [Collection.At] and [Collection.IndexExists] reject negative indexes with
// [ErrInvalidArgument]. [Collection.Insert] and [Collection.Remove] accept
// them and count from the end, so Insert(-1, x) appends and Remove(-1)
// drops the last item.
//
// # Factory
//
// A [Factory] maps a [KindName] to a constructor. Constructors are
// registered explicitly, usually at startup:
//
//	f := collections.NewDefaultFactory()
//	_ = collections.RegisterKind[User](f, "users")
//
//	records, _ := collections.ParseRecords(yamlDoc)
//	users, err := collections.CreateFromArray[User](f, "users", records)
//
// Struct elements are decoded from records with mapstructure, honouring
// `mapstructure` field tags, unless they implement [RecordUnmarshaler].
//
// # Type-transforming operations
//
// Operations that change the element type are package-level functions:
// [Map], [Pluck], [Reduce], [GroupBy], [Sum].
package collections
