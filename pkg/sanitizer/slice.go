package sanitizer

import "strings"

func NormalizeStringSlice(items []string, normalizer func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)

		if normalized == "" {
			continue
		}

		if seen[normalized] {
			continue
		}

		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}

// NormalizeSelectionValues flattens repeated and comma separated query
// values into a de-duplicated list in request order.
func NormalizeSelectionValues(values []string) []string {
	return NormalizeStringSlice(SplitList(values), strings.TrimSpace)
}
