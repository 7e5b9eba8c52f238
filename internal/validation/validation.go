// Package validation contains the pure form validators the UI layers run
// before dispatching a store mutation. Each validator returns a map of
// field name to a human-readable message for exactly the invalid fields;
// an empty map means the form is valid.
//
// Validation is advisory: the stores do not re-validate, so a caller that
// skips these checks can write invalid data. That contract is deliberate.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// validateLength applies the shared required/min/max rule for a text field.
// The blank check trims; the length checks run on the raw value.
// Pass max = 0 to skip the upper bound.
func validateLength(field, value string, min, max int, errors map[string]string) {
	if isBlank(value) {
		errors[field] = fmt.Sprintf("%s is required (min %d characters)", capitalize(field), min)
		return
	}

	if len(value) < min {
		errors[field] = fmt.Sprintf("%s must be at least %d characters", capitalize(field), min)
	} else if max > 0 && len(value) > max {
		errors[field] = fmt.Sprintf("%s must be at most %d characters", capitalize(field), max)
	}
}
