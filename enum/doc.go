// Package enum provides typed enumerations: a fixed, ordered set of named
// members, each carrying a comparable value.
//
// Define members once, usually in package-level variables:
//
//	var Status = enum.New[string]("Status")
//
//	var (
//	    Active   = Status.MustDefine("ACTIVE", "active")
//	    Disabled = Status.MustDefine("DISABLED", "disabled")
//	)
//
// then look them up by key or value:
//
//	m, err := Status.MemberByValue("active") // Active
//	Status.Values()                          // ["active" "disabled"]
//
// An [Enumeration] is safe for concurrent use.
package enum
