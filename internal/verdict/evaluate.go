package verdict

import "math"

// #region evaluate
// Evaluate compares a measured concentration against a resolved limit.
// Equality is compliant; only strict excess fails. Exceedance is
// max(0, measured-limit), rounded to 4 decimal places for reporting.
// Pure and total: no retries, no partial states.
func Evaluate(limit, measured float64) Verdict {
	exceed := measured - limit
	if exceed < 0 {
		exceed = 0
	}
	return Verdict{
		Limit:      limit,
		Measured:   measured,
		Compliant:  measured <= limit,
		Exceedance: round4(exceed),
	}
}

// round4 rounds to 4 decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// #endregion evaluate
