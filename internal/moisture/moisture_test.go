package moisture

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDriedLimit(t *testing.T) {
	// Red pepper style: raw 83% moisture dried to 14%.
	got := DriedLimit(2.0, 83.0, 14.0)
	want := 2.0 * 86.0 / 17.0 // ≈ 10.1176
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("DriedLimit = %g, want %g", got, want)
	}
	if math.Abs(got-10.1176) > 1e-3 {
		t.Fatalf("DriedLimit = %g, expected ≈ 10.1176", got)
	}
}

func TestDriedLimitRawMoisture100(t *testing.T) {
	// Zero denominator degrades to factor 1.0 instead of dividing.
	got := DriedLimit(2.0, 100.0, 14.0)
	if got != 2.0 {
		t.Fatalf("expected raw limit unchanged at 100%% raw moisture, got %g", got)
	}
}

func TestFactorIdentity(t *testing.T) {
	if f := Factor(14.0, 14.0); f != 1.0 {
		t.Fatalf("expected factor 1.0 for equal moisture, got %g", f)
	}
}

func TestFactorConcentrates(t *testing.T) {
	if f := Factor(83.0, 14.0); f <= 1.0 {
		t.Fatalf("drying must scale the limit up, got factor %g", f)
	}
}

func TestLoadReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moisture.yaml")
	data := []byte("고추:\n  raw_pct: 83\n  processed_pct: 14\n무:\n  raw_pct: 94\n  processed_pct: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ref, err := LoadReference(path)
	if err != nil {
		t.Fatalf("LoadReference: %v", err)
	}
	p, ok := ref.Lookup("고추")
	if !ok {
		t.Fatal("expected profile for 고추")
	}
	if p.RawPct != 83 || p.ProcessedPct != 14 {
		t.Fatalf("unexpected profile %+v", p)
	}
	if _, ok := ref.Lookup("감자"); ok {
		t.Fatal("expected miss for food not in reference")
	}
}

func TestLoadReferenceMissingFile(t *testing.T) {
	_, err := LoadReference(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadReferenceBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	os.WriteFile(path, []byte("::not yaml::\n\t"), 0644)

	_, err := LoadReference(path)
	if err == nil {
		t.Fatal("expected error for bad YAML")
	}
}
