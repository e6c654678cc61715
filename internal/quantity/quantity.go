package quantity

import "strconv"

// #region parse
// Parse extracts a non-negative concentration from free text. Every byte
// that is not an ASCII digit or a decimal point is discarded before
// parsing; an empty or unparsable remainder degrades to 0.0. This is a
// contract, not a quirk: one bad cell must never abort a batch, so Parse
// is total and silent.
func Parse(raw string) float64 {
	cleaned := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '.' {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil {
		return 0
	}
	return v
}

// #endregion parse
