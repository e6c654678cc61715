package limits

import "strings"

// #region resolve-name
// ResolveName matches a requested pesticide name against the canonical
// names in the table. An exact, case-sensitive match always wins, even
// when a shorter canonical name would also substring-match. Otherwise the
// first canonical name (in table order) that contains the requested name
// case-insensitively is returned. Substring containment is a coarse
// heuristic for noisy or partial input, not fuzzy matching: there is no
// edit-distance tolerance.
func ResolveName(table Table, requested string) (string, bool) {
	if requested == "" {
		return "", false
	}
	for _, e := range table {
		if e.Pesticide == requested {
			return e.Pesticide, true
		}
	}
	lower := strings.ToLower(requested)
	for _, e := range table {
		if strings.Contains(strings.ToLower(e.Pesticide), lower) {
			return e.Pesticide, true
		}
	}
	return "", false
}

// #endregion resolve-name
