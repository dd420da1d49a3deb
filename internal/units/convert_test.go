package units

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
	}{
		{"cups", UnitCup},
		{"Cup", UnitCup},
		{"tablespoons", UnitTablespoon},
		{"tbsp", UnitTablespoon},
		{"tsp", UnitTeaspoon},
		{"TSP", UnitTeaspoon},
		{"grams", UnitGram},
		{"g", UnitGram},
		{"kg", UnitKilogram},
		{"oz", UnitOunce},
		{"lbs", UnitPound},
		{"pounds", UnitPound},
		{"handful", Unit("handful")},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestConvertVolume(t *testing.T) {
	if got := ConvertVolume(1, "cup", "teaspoon"); got != 48 {
		t.Errorf("ConvertVolume(1, cup, teaspoon) = %v, want 48", got)
	}
	if got := ConvertVolume(3, "teaspoon", "tablespoon"); got != 1 {
		t.Errorf("ConvertVolume(3, teaspoon, tablespoon) = %v, want 1", got)
	}
	if got := ConvertVolume(2, "cups", "tablespoons"); got != 32 {
		t.Errorf("ConvertVolume(2, cups, tablespoons) = %v, want 32", got)
	}
}

func TestConvertVolumeIdentity(t *testing.T) {
	// Same unit after normalization must return the amount unchanged,
	// with no float round trip.
	for _, u := range []string{"cup", "cups", "tablespoon", "tbsp", "teaspoons"} {
		if got := ConvertVolume(1.37, u, u); got != 1.37 {
			t.Errorf("ConvertVolume(1.37, %q, %q) = %v, want 1.37", u, u, got)
		}
	}
	if got := ConvertVolume(0.3, "tbsp", "tablespoons"); got != 0.3 {
		t.Errorf("ConvertVolume across spellings of the same unit = %v, want 0.3", got)
	}
}

func TestGrams(t *testing.T) {
	if got := Grams(1, "cup", "sugar"); got != 200 {
		t.Errorf("Grams(1, cup, sugar) = %v, want 200", got)
	}
	if got := Grams(2, "tablespoon", "butter"); !almostEqual(got, 28.4) {
		t.Errorf("Grams(2, tablespoon, butter) = %v, want 28.4", got)
	}
	// Plural unit spellings hit the same density row.
	if got := Grams(1, "cups", "sugar"); got != 200 {
		t.Errorf("Grams(1, cups, sugar) = %v, want 200", got)
	}
}

func TestGramsGenericFallback(t *testing.T) {
	if got := Grams(1, "cup", "unknown-ingredient"); got != 120 {
		t.Errorf("Grams(1, cup, unknown) = %v, want 120", got)
	}
	if got := Grams(1, "kg", ""); got != 1000 {
		t.Errorf("Grams(1, kg) = %v, want 1000", got)
	}
	if got := Grams(2, "oz", "sugar"); !almostEqual(got, 56.7) {
		t.Errorf("Grams(2, oz, sugar) = %v, want 56.7", got)
	}
	// Entirely unknown unit: amount passes through unchanged.
	if got := Grams(7, "handful", "flour"); got != 7 {
		t.Errorf("Grams(7, handful, flour) = %v, want 7", got)
	}
}

func TestScaleFactorSameUnit(t *testing.T) {
	if got := ScaleFactor(2, "cups", 1, "cup", "flour"); got != 2 {
		t.Errorf("same-unit scale = %v, want 2", got)
	}
}

func TestScaleFactorVolume(t *testing.T) {
	// 1 cup consumed against a 1 teaspoon serving basis: the direct
	// volume path must be taken, not the gram bridge.
	if got := ScaleFactor(1, "cup", 1, "teaspoon", "sugar"); got != 48 {
		t.Errorf("volume scale = %v, want 48", got)
	}
}

func TestScaleFactorGramBridge(t *testing.T) {
	// 1 cup of sugar against a 100 gram serving basis: 200g / 100g.
	if got := ScaleFactor(1, "cup", 100, "gram", "sugar"); !almostEqual(got, 2) {
		t.Errorf("gram-bridged scale = %v, want 2", got)
	}
}

func TestScaleFactorDegenerate(t *testing.T) {
	// Zero serving size would divide by zero; the caller gets 0 as the
	// skip signal rather than Inf or NaN.
	if got := ScaleFactor(1, "cup", 0, "cup", "flour"); got != 0 {
		t.Errorf("zero serving size scale = %v, want 0", got)
	}
	if got := ScaleFactor(0, "gram", 0, "gram", ""); got != 0 {
		t.Errorf("0/0 scale = %v, want 0", got)
	}
}
