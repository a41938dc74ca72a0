// Package arr provides small helpers for plain Go slices and string-keyed
// maps.
//
// # Dot-notation access
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")   // → "London"
//	arr.Has(m, "user.name")           // → false
//
// # Flat records
//
// [ToFlat] turns a record into string values suitable for storage in flat
// key/value systems such as HTTP forms or headers.
package arr
