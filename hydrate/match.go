package hydrate

import "strings"

// Match resolves a stored (possibly denormalized) title against catalog
// candidates. Rules run in priority order, first hit wins:
//
//  1. exact match
//  2. prefix before the last hyphen, exact (the backend suffixes duplicated
//     titles, e.g. "Tour Availability-10")
//  3. case-insensitive substring in either direction
//
// Returns the candidate index, or ok=false when nothing matches.
func Match(stored string, candidates []string) (int, bool) {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return 0, false
	}

	for i, c := range candidates {
		if stored == c {
			return i, true
		}
	}

	if idx := strings.LastIndex(stored, "-"); idx > 0 {
		prefix := strings.TrimSpace(stored[:idx])
		for i, c := range candidates {
			if prefix == c {
				return i, true
			}
		}
	}

	lower := strings.ToLower(stored)
	for i, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lower, lc) || strings.Contains(lc, lower) {
			return i, true
		}
	}

	return 0, false
}
