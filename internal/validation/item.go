package validation

import "strings"

// ItemForm is a partially filled menu item as entered in a form.
// Available is a pointer so "not answered" is distinguishable from false.
type ItemForm struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Available   *bool
	Ingredients []string
}

// ValidateItem checks every menu item rule. The minimum-length checks run on
// the trimmed value while the maximum-length checks run on the raw value,
// matching the form behavior the messages were written for.
func ValidateItem(f ItemForm, categories []string) map[string]string {
	errors := make(map[string]string)

	if len(strings.TrimSpace(f.Name)) < 2 {
		errors["name"] = "Name is required (min 2 characters)"
	}
	if f.Name != "" && len(f.Name) > 64 {
		errors["name"] = "Name must be at most 64 characters"
	}

	if len(strings.TrimSpace(f.Description)) < 5 {
		errors["description"] = "Description is required (min 5 characters)"
	}
	if f.Description != "" && len(f.Description) > 256 {
		errors["description"] = "Description must be at most 256 characters"
	}

	if f.Price <= 0 {
		errors["price"] = "Price must be greater than 0"
	}

	if f.Category == "" || !containsString(categories, f.Category) {
		errors["category"] = "Category is required"
	}

	if len(f.Ingredients) == 0 || hasBlankEntry(f.Ingredients) {
		errors["ingredients"] = "At least one valid ingredient is required"
	}

	if f.Image == "" {
		errors["image"] = "Image is required"
	}

	if f.Available == nil {
		errors["available"] = "Availability is required"
	}

	return errors
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func hasBlankEntry(values []string) bool {
	for _, v := range values {
		if isBlank(v) {
			return true
		}
	}
	return false
}
