package hbswitch

import (
	"reflect"

	"github.com/aymerick/raymond"
)

// Str converts a value to its rendered string form using Handlebars
// conversion rules (nil renders empty, booleans render "true"/"false",
// numbers render without a trailing ".0" when integral).
func Str(value interface{}) string {
	return raymond.Str(value)
}

// Equal reports whether two template values are structurally equal.
//
// Numbers compare by value regardless of Go kind, so a template literal 4
// matches int(4), int64(4) and float64(4) alike. Strings and booleans
// compare by value. There is no coercion across kinds: "4" never equals 4
// and true never equals 1. nil only equals nil. Anything else falls back to
// deep equality.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, ok := toFloat(a); ok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	if as, ok := a.(string); ok {
		bs, bok := b.(string)
		return bok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, bok := b.(bool)
		return bok && ab == bb
	}
	return reflect.DeepEqual(a, b)
}

// Truthy reports whether a value is true under Handlebars boolean coercion:
// nil, false, zero numbers, empty strings and empty collections are falsy,
// everything else is truthy.
func Truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case raymond.SafeString:
		return string(v) != ""
	}
	if f, ok := toFloat(value); ok {
		return f != 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// toFloat normalizes any numeric kind to float64. Booleans and strings are
// not numbers here.
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
