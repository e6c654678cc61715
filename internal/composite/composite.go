package composite

import "github.com/foodsafelab/residuecheck/internal/limits"

// #region recipe
// Ingredient is one recipe row: a food and its mixing ratio in percent.
type Ingredient struct {
	Food     string
	RatioPct float64
}

// Recipe is an ordered ingredient list. Ratios are not required to sum to
// 100; the engine reports RatioSum and leaves recipe coherence to the
// caller.
type Recipe []Ingredient

// #endregion recipe

// #region result
// Component records one ingredient's share of a composite limit.
// Provenance stays per ingredient: a composite can legitimately mix
// explicit and default-policy sources.
type Component struct {
	Food     string
	RatioPct float64
	Resolved limits.ResolvedLimit
}

// Result is a computed composite limit with its full breakdown.
type Result struct {
	Limit      float64
	RatioSum   float64
	Components []Component
}

// #endregion result

// #region limit
// Limit computes the weighted-average limit for a multi-ingredient
// product: sum of ingredient_limit * ratio/100 over the recipe. Each
// ingredient resolves independently against the table, falling back to
// the default policy when unmatched. Ratios are applied as given; no
// renormalization happens when they do not sum to 100.
func Limit(table limits.Table, recipe Recipe, pesticide string) Result {
	res := Result{Components: make([]Component, 0, len(recipe))}
	for _, ing := range recipe {
		rl := limits.Resolve(table, ing.Food, pesticide)
		res.Components = append(res.Components, Component{
			Food:     ing.Food,
			RatioPct: ing.RatioPct,
			Resolved: rl,
		})
		res.Limit += rl.Value * ing.RatioPct / 100
		res.RatioSum += ing.RatioPct
	}
	return res
}

// #endregion limit
