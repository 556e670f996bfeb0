package utils

import (
	"fmt"
	"strings"
)

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}
