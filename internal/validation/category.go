package validation

import "strings"

// ValidateCategoryName checks a new category name against the trim/length
// rules and against the current category set (case-sensitive exact match).
func ValidateCategoryName(name string, categories []string) map[string]string {
	errors := make(map[string]string)
	trimmed := strings.TrimSpace(name)

	switch {
	case trimmed == "":
		errors["name"] = "Category name is required"
	case len(trimmed) < 2:
		errors["name"] = "Category name must be at least 2 characters"
	case len(trimmed) > 32:
		errors["name"] = "Category name must be at most 32 characters"
	default:
		for _, c := range categories {
			if c == trimmed {
				errors["name"] = "Category already exists"
				break
			}
		}
	}
	return errors
}
