package sof

import "strings"

// Extract runs every pattern of every field over text and collects the
// candidate strings. For each field the result holds every non-empty,
// trimmed capture group in pattern order, then match order, then group
// order, de-duplicated by first occurrence. A field with zero matches
// yields an empty slice. Pure; the same text always yields the same
// extraction.
func (t *PatternTable) Extract(text string) RawExtraction {
	out := make(RawExtraction, len(t.order))
	for _, field := range t.order {
		candidates := []string{}
		seen := make(map[string]struct{})
		for _, re := range t.compiled[field] {
			for _, match := range re.FindAllStringSubmatch(text, -1) {
				for _, group := range match[1:] {
					group = strings.TrimSpace(group)
					if group == "" {
						continue
					}
					if _, dup := seen[group]; dup {
						continue
					}
					seen[group] = struct{}{}
					candidates = append(candidates, group)
				}
			}
		}
		out[field] = candidates
	}
	return out
}

// first returns the leading candidate for a field, if any.
func (r RawExtraction) first(field Field) (string, bool) {
	if cs := r[field]; len(cs) > 0 {
		return cs[0], true
	}
	return "", false
}
