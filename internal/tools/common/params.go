package common

import (
	"fmt"
	"strings"
	"time"
)

// StringArg extracts a required string argument.
func StringArg(args map[string]interface{}, name string) (string, error) {
	val, ok := args[name].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	return val, nil
}

// OptionalStringArg extracts an optional string argument, returning the
// fallback when absent or empty.
func OptionalStringArg(args map[string]interface{}, name, fallback string) string {
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return fallback
}

// BoolArg extracts an optional boolean argument.
func BoolArg(args map[string]interface{}, name string, fallback bool) bool {
	if val, ok := args[name].(bool); ok {
		return val
	}
	return fallback
}

// IntArg extracts an optional numeric argument. JSON numbers arrive as
// float64.
func IntArg(args map[string]interface{}, name string, fallback int64) int64 {
	if val, ok := args[name].(float64); ok {
		return int64(val)
	}
	return fallback
}

// FloatArg extracts an optional float argument.
func FloatArg(args map[string]interface{}, name string, fallback float64) float64 {
	if val, ok := args[name].(float64); ok {
		return val
	}
	return fallback
}

// TimeArg extracts a required RFC 3339 timestamp argument.
func TimeArg(args map[string]interface{}, name string) (time.Time, error) {
	val, err := StringArg(args, name)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp: %w", name, err)
	}
	return t, nil
}

// OptionalTimeArg extracts an optional RFC 3339 timestamp argument. A
// missing argument yields a zero time; a present but malformed one is an
// error.
func OptionalTimeArg(args map[string]interface{}, name string) (time.Time, error) {
	val, ok := args[name].(string)
	if !ok || val == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC 3339 timestamp: %w", name, err)
	}
	return t, nil
}

// StringListArg extracts a comma-separated list argument into trimmed
// entries. Missing or empty yields nil.
func StringListArg(args map[string]interface{}, name string) []string {
	val, ok := args[name].(string)
	if !ok || val == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
