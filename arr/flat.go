package arr

import (
	"encoding"
	"encoding/json"
	"reflect"
	"strconv"
)

// ToFlat converts a record into a flat map of strings.
//
// Scalars (strings, booleans and numbers) are formatted as text, true as
// "1". Values implementing [encoding.TextMarshaler] or [json.Marshaler] are
// serialised with it. Everything else (nil, nil pointers, nested maps and
// slices, plain structs) is dropped, as is any value that serialises to the empty string,
// so false never appears in the output.
//
//	ToFlat(map[string]any{"id": 7, "name": "Ann", "tags": []string{"a"}})
//	// → map[string]string{"id": "7", "name": "Ann"}
func ToFlat(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		if s, ok := flatValue(v); ok && s != "" {
			out[k] = s
		}
	}
	return out
}

func flatValue(v any) (string, bool) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}
	switch x := v.(type) {
	case nil:
		return "", false
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		return string(b), err == nil
	case json.Marshaler:
		b, err := x.MarshalJSON()
		return string(b), err == nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), true
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return "1", true
		}
		return "", true
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10), true
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10), true
	case rv.CanFloat():
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}
