package utils

import (
	"strings"

	"github.com/pkg/errors"
)

// IsBooleanValue checks if a string represents a boolean value.
// This is case-insensitive and only accepts true and false.
//
// Examples:
//   - "true" -> true
//   - "TRUE" -> true
//   - "False" -> true
//   - "1" -> false
//   - "yes" -> false
//   - "" -> false
func IsBooleanValue(value string) bool {
	lowered := strings.ToLower(strings.TrimSpace(value))
	return lowered == "true" || lowered == "false"
}

// ParseBoolean converts a boolean-ish changelog value into a bool. Empty input
// is treated as false.
func ParseBoolean(value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return false, nil
	}

	if !IsBooleanValue(value) {
		return false, errors.Errorf("invalid boolean value: %q", value)
	}

	return strings.EqualFold(strings.TrimSpace(value), "true"), nil
}
