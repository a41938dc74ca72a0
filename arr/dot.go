package arr

import "strings"

// Get retrieves a value from m using a dot-notation key.
// A top-level key containing dots is matched literally first.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := m[key]; ok {
		return v
	}
	if v, ok := lookup(m, strings.Split(key, ".")); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	if _, ok := m[key]; ok {
		return true
	}
	_, ok := lookup(m, strings.Split(key, "."))
	return ok
}

func lookup(m map[string]any, segments []string) (any, bool) {
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}
