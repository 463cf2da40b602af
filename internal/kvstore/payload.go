package kvstore

import (
	"math"
	"strconv"
)

// Stored payloads are decoded into generic JSON values first so that a single
// bad field degrades to a default instead of rejecting the whole record.
// These helpers perform that field-level coercion.

// AsInt64 returns v as an integer when it is a JSON number
func AsInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// AsInt is AsInt64 narrowed to int
func AsInt(v any) (int, bool) {
	n, ok := AsInt64(v)
	return int(n), ok
}

// AsString returns v when it is a JSON string
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Truthy mirrors loose boolean coercion: false, 0, "" and null are false,
// everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

// AsText renders scalar JSON values as text. Strings are returned unchanged,
// numbers and booleans are formatted, and anything else is empty.
func AsText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
