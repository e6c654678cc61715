package composite

import (
	"math"
	"testing"

	"github.com/foodsafelab/residuecheck/internal/limits"
)

func testTable() limits.Table {
	return limits.Table{
		{Food: "쌀", Pesticide: "Carbaryl", Limit: 1.0},
		{Food: "보리", Pesticide: "Carbaryl", Limit: 2.0},
	}
}

func TestLimitWeightedAverage(t *testing.T) {
	recipe := Recipe{
		{Food: "쌀", RatioPct: 60},
		{Food: "보리", RatioPct: 40},
	}
	res := Limit(testTable(), recipe, "Carbaryl")

	if math.Abs(res.Limit-1.4) > 1e-9 {
		t.Fatalf("expected 1.4, got %g", res.Limit)
	}
	if res.RatioSum != 100 {
		t.Fatalf("expected ratio sum 100, got %g", res.RatioSum)
	}
	if len(res.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(res.Components))
	}
}

func TestLimitMixedProvenance(t *testing.T) {
	recipe := Recipe{
		{Food: "쌀", RatioPct: 50},
		{Food: "감자", RatioPct: 50}, // unregistered → default policy
	}
	res := Limit(testTable(), recipe, "Carbaryl")

	want := 1.0*0.5 + limits.DefaultLimit*0.5
	if math.Abs(res.Limit-want) > 1e-9 {
		t.Fatalf("expected %g, got %g", want, res.Limit)
	}
	if res.Components[0].Resolved.Source != limits.SourceExplicit {
		t.Fatalf("expected explicit for 쌀, got %s", res.Components[0].Resolved.Source)
	}
	if res.Components[1].Resolved.Source != limits.SourceDefaultPolicy {
		t.Fatalf("expected default policy for 감자, got %s", res.Components[1].Resolved.Source)
	}
}

func TestLimitNoRenormalization(t *testing.T) {
	// Ratios sum to 80: applied as given, reported via RatioSum.
	recipe := Recipe{
		{Food: "쌀", RatioPct: 40},
		{Food: "보리", RatioPct: 40},
	}
	res := Limit(testTable(), recipe, "Carbaryl")

	want := 1.0*0.4 + 2.0*0.4
	if math.Abs(res.Limit-want) > 1e-9 {
		t.Fatalf("expected %g (no renormalization), got %g", want, res.Limit)
	}
	if res.RatioSum != 80 {
		t.Fatalf("expected ratio sum 80, got %g", res.RatioSum)
	}
}

func TestLimitComponentOrderMatchesRecipe(t *testing.T) {
	recipe := Recipe{
		{Food: "보리", RatioPct: 30},
		{Food: "쌀", RatioPct: 70},
	}
	res := Limit(testTable(), recipe, "Carbaryl")
	if res.Components[0].Food != "보리" || res.Components[1].Food != "쌀" {
		t.Fatalf("component order must match recipe order: %+v", res.Components)
	}
}

func TestLimitEmptyRecipe(t *testing.T) {
	res := Limit(testTable(), Recipe{}, "Carbaryl")
	if res.Limit != 0 || res.RatioSum != 0 || len(res.Components) != 0 {
		t.Fatalf("expected zero result for empty recipe, got %+v", res)
	}
}
