package moisture

// #region profile
// Profile holds moisture percentages for the raw and processed forms of a
// commodity. Both are percentages in [0, 100).
type Profile struct {
	RawPct       float64 `yaml:"raw_pct"`
	ProcessedPct float64 `yaml:"processed_pct"`
}

// #endregion profile

// #region dried-limit
// Factor returns the moisture conversion factor (100-processed)/(100-raw).
// A raw moisture of 100% would zero the denominator; the factor degrades
// to 1.0 (no adjustment) instead of dividing by zero.
func Factor(rawPct, processedPct float64) float64 {
	if rawPct == 100 {
		return 1.0
	}
	return (100 - processedPct) / (100 - rawPct)
}

// DriedLimit rescales a raw-commodity limit to its dried or processed
// equivalent. Regulatory limits are defined on raw commodities; drying
// concentrates residues in proportion to mass loss, so the bound scales
// up by the same ratio.
func DriedLimit(rawLimit, rawPct, processedPct float64) float64 {
	return rawLimit * Factor(rawPct, processedPct)
}

// #endregion dried-limit
