package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foodsafelab/residuecheck/internal/composite"
	"github.com/foodsafelab/residuecheck/internal/quantity"
	"github.com/foodsafelab/residuecheck/internal/verdict"
)

var (
	compositeRecipe    string
	compositePesticide string
	compositeMeasured  string
)

// compositeCmd evaluates a multi-ingredient product
var compositeCmd = &cobra.Command{
	Use:   "composite",
	Short: "Evaluate a multi-ingredient product against a weighted-average limit",
	Long: `Computes the weighted-average limit for a recipe, resolving each
ingredient independently (unmatched ingredients fall back to the default
policy), then evaluates the measurement against the aggregate.

Recipe format: "food:pct,food:pct", e.g. "쌀:60,보리:40". Ratios are applied
as given; a sum other than 100 is reported, not rejected or renormalized.`,
	RunE: runComposite,
}

func init() {
	compositeCmd.Flags().StringVar(&compositeRecipe, "recipe", "", `recipe as "food:pct,food:pct" (required)`)
	compositeCmd.Flags().StringVar(&compositePesticide, "pesticide", "", "pesticide name (required)")
	compositeCmd.Flags().StringVar(&compositeMeasured, "measured", "", "measured concentration in mg/kg (required)")
	compositeCmd.MarkFlagRequired("recipe")
	compositeCmd.MarkFlagRequired("pesticide")
	compositeCmd.MarkFlagRequired("measured")
}

func runComposite(cmd *cobra.Command, args []string) error {
	recipe, err := parseRecipe(compositeRecipe)
	if err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	res := composite.Limit(table, recipe, compositePesticide)
	for _, c := range res.Components {
		fmt.Printf("  %-12s %5.1f%%  limit=%-8g (%s)\n",
			c.Food, c.RatioPct, c.Resolved.Value, c.Resolved.Source)
	}
	if res.RatioSum != 100 {
		logger.Warn("recipe ratios do not sum to 100", zap.Float64("sum", res.RatioSum))
		fmt.Printf("note: ratios sum to %g%%, applied as given\n", res.RatioSum)
	}
	fmt.Printf("composite limit: %.4f mg/kg\n", res.Limit)

	v := verdict.Evaluate(res.Limit, quantity.Parse(compositeMeasured))
	printVerdict(v)
	return nil
}

// parseRecipe parses "food:pct,food:pct" into an ordered recipe.
func parseRecipe(s string) (composite.Recipe, error) {
	var recipe composite.Recipe
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		food, ratio, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("bad recipe item %q, want food:pct", part)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(ratio), 64)
		if err != nil || pct < 0 {
			return nil, fmt.Errorf("bad ratio in recipe item %q", part)
		}
		recipe = append(recipe, composite.Ingredient{
			Food:     strings.TrimSpace(food),
			RatioPct: pct,
		})
	}
	if len(recipe) == 0 {
		return nil, fmt.Errorf("empty recipe")
	}
	return recipe, nil
}
