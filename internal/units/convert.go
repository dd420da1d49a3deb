package units

import (
	"math"
	"strings"
)

// teaspoonRatios expresses each volume unit in teaspoons
var teaspoonRatios = map[Unit]float64{
	UnitTeaspoon:   1,
	UnitTablespoon: 3,
	UnitCup:        48,
}

// densities holds ingredient-specific gram weights for one cup,
// tablespoon and teaspoon. Values follow common published baking
// conversions; anything not listed falls back to the generic table.
var densities = map[string]map[Unit]float64{
	"sugar":           {UnitCup: 200, UnitTablespoon: 12.5, UnitTeaspoon: 4.2},
	"brown sugar":     {UnitCup: 213, UnitTablespoon: 13.3, UnitTeaspoon: 4.4},
	"flour":           {UnitCup: 120, UnitTablespoon: 7.5, UnitTeaspoon: 2.5},
	"butter":          {UnitCup: 227, UnitTablespoon: 14.2, UnitTeaspoon: 4.7},
	"oil":             {UnitCup: 218, UnitTablespoon: 13.6, UnitTeaspoon: 4.5},
	"milk":            {UnitCup: 240, UnitTablespoon: 15, UnitTeaspoon: 5},
	"water":           {UnitCup: 240, UnitTablespoon: 15, UnitTeaspoon: 5},
	"salt":            {UnitCup: 273, UnitTablespoon: 17, UnitTeaspoon: 6},
	"baking powder":   {UnitCup: 192, UnitTablespoon: 12, UnitTeaspoon: 4},
	"baking soda":     {UnitCup: 220, UnitTablespoon: 14, UnitTeaspoon: 4.6},
	"vanilla extract": {UnitCup: 208, UnitTablespoon: 13, UnitTeaspoon: 4.3},
	"honey":           {UnitCup: 340, UnitTablespoon: 21, UnitTeaspoon: 7},
	"cocoa powder":    {UnitCup: 85, UnitTablespoon: 5.3, UnitTeaspoon: 1.8},
}

// genericGrams holds per-unit gram factors used when no ingredient
// density is known
var genericGrams = map[Unit]float64{
	UnitCup:        120,
	UnitTablespoon: 15,
	UnitTeaspoon:   5,
	UnitGram:       1,
	UnitKilogram:   1000,
	UnitOunce:      28.35,
	UnitPound:      453.592,
}

// ConvertVolume converts an amount between the three cooking volume
// units via their teaspoon ratios. Identical units (after
// normalization) return the amount unchanged, exactly, with no rounding
// error introduced.
func ConvertVolume(amount float64, from, to string) float64 {
	f := Normalize(from)
	t := Normalize(to)
	if f == t {
		return amount
	}
	inTeaspoons := amount * ratioOrOne(f)
	return inTeaspoons / ratioOrOne(t)
}

func ratioOrOne(u Unit) float64 {
	if r, ok := teaspoonRatios[u]; ok {
		return r
	}
	return 1
}

// Grams converts an amount of an ingredient to grams. The
// ingredient-specific density table is consulted first (case-insensitive
// on the ingredient name), then the generic per-unit table. An entirely
// unrecognized unit returns the amount unchanged: the caller is
// responsible for sanity-checking the result.
func Grams(amount float64, unit, ingredient string) float64 {
	u := Normalize(unit)

	if byUnit, ok := densities[strings.ToLower(strings.TrimSpace(ingredient))]; ok {
		if factor, ok := byUnit[u]; ok {
			return amount * factor
		}
	}

	if factor, ok := genericGrams[u]; ok {
		return amount * factor
	}
	return amount
}

// ScaleFactor computes the ratio between a consumed quantity and a
// nutrition fact's serving basis. Selection is three-tier: identical
// units (singular/plural-insensitive) divide directly, two volume units
// convert volume-to-volume, and everything else bridges through grams.
// Direct volume conversion is preferred because the gram bridge is
// approximate. A zero or non-finite result signals the caller to skip
// the line.
func ScaleFactor(quantity float64, unit string, servingSize float64, servingUnit, ingredient string) float64 {
	var factor float64
	switch {
	case Normalize(unit) == Normalize(servingUnit):
		factor = quantity / servingSize
	case AreVolume(unit, servingUnit):
		factor = ConvertVolume(quantity, unit, servingUnit) / servingSize
	default:
		used := Grams(quantity, unit, ingredient)
		servingGrams := Grams(servingSize, servingUnit, ingredient)
		factor = used / servingGrams
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0
	}
	return factor
}
