package sanitizer

import "strings"

// SplitList splits every item on commas, so ?a=x,y&a=z yields x, y, z.
func SplitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.Split(item, ",")...)
	}
	return out
}
