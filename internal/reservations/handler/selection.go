package handler

import (
	"net/url"

	"hoteldash/pkg/model"
	"hoteldash/pkg/sanitizer"
)

// parseSelection turns query parameters into a selection. A filter missing
// from the query falls back to every known value; a filter that is present
// but blank allows nothing. Values are split on commas, so a category
// value that itself contains a comma cannot be selected.
func parseSelection(query url.Values, defaults model.FilterOptions) model.Selection {
	values := make(map[model.Attribute][]string, len(model.FilterAttributes))
	for _, attr := range model.FilterAttributes {
		raw, present := query[string(attr)]
		if !present {
			values[attr] = defaults[attr]
			continue
		}
		values[attr] = sanitizer.NormalizeSelectionValues(raw)
	}
	return model.NewSelection(values)
}
