package costing

import (
	"fmt"

	"bakeshop/internal/catalog"
	"bakeshop/internal/models"
	"bakeshop/internal/units"
)

// Markup constants applied on top of per-tray cost plus packaging.
// These are fixed business formulas, reproduced exactly; they are not
// configurable.
const (
	retailMultiplier = 2.0
	storeMultiplier  = 1.5
	overheadFactor   = 1.3
)

// SkipReason classifies why an ingredient line did not contribute to a
// computed total
type SkipReason string

const (
	SkipInvalidFormat   SkipReason = "invalid_format"
	SkipLookupMiss      SkipReason = "lookup_miss"
	SkipUnsupportedUnit SkipReason = "unsupported_unit"
)

// Skip records one dropped line together with the reason, so callers
// can surface incomplete catalogs to the operator instead of silently
// under-counting.
type Skip struct {
	Item   models.RecipeItem `json:"item"`
	Reason SkipReason        `json:"reason"`
}

func (s Skip) String() string {
	return fmt.Sprintf("%s (%s): %s", s.Item.Name, s.Item.Size, s.Reason)
}

// MaterialCost sums the ingredient cost of one recipe batch against a
// catalog snapshot. Per-line failures — unparseable sizes, names
// missing from the catalog, units outside cup/tablespoon/teaspoon —
// skip that line and are reported alongside the partial total; the
// function never fails outright. Unit equivalents left unset default to
// 1 so a half-filled catalog still produces a usable estimate.
func MaterialCost(items []models.RecipeItem, cat *catalog.Catalog) (float64, []Skip) {
	var total float64
	var skips []Skip

	for _, item := range items {
		measure, ok := units.ParseSizeField(item.Size)
		if !ok {
			skips = append(skips, Skip{Item: item, Reason: SkipInvalidFormat})
			continue
		}

		ing, ok := cat.Lookup(item.Name)
		if !ok {
			skips = append(skips, Skip{Item: item, Reason: SkipLookupMiss})
			continue
		}

		var per float64
		switch units.Normalize(measure.Unit) {
		case units.UnitCup:
			per = orOne(ing.Cups)
		case units.UnitTablespoon:
			per = orOne(ing.Tablespoons)
		case units.UnitTeaspoon:
			per = orOne(ing.Teaspoons)
		default:
			skips = append(skips, Skip{Item: item, Reason: SkipUnsupportedUnit})
			continue
		}

		total += ing.Price / per * measure.Quantity
	}

	return total, skips
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// RetailAndStorePrice derives the two selling prices from a batch's
// material cost, the number of trays it yields and the per-unit prices
// of the selected packaging. Retail doubles cost-plus-packaging, the
// store price takes 1.5x, and both carry a 30% overhead on top.
func RetailAndStorePrice(materialCost, traysMade float64, packagingUnitPrices []float64) (retail, store float64) {
	trays := traysMade
	if trays < 1 {
		trays = 1
	}
	perTray := materialCost / trays

	var packagingSum float64
	for _, p := range packagingUnitPrices {
		packagingSum += p
	}

	base := perTray + packagingSum
	retail = base * retailMultiplier * overheadFactor
	store = base * storeMultiplier * overheadFactor
	return retail, store
}

// TraysAndRemainder splits a batch count into full trays and leftover
// cookies. It reports ok=false, leaving the derived fields empty, when
// cookiesPerTray is zero or either input is non-positive.
func TraysAndRemainder(numCookies, cookiesPerTray int) (trays, remaining int, ok bool) {
	if numCookies <= 0 || cookiesPerTray <= 0 {
		return 0, 0, false
	}
	return numCookies / cookiesPerTray, numCookies % cookiesPerTray, true
}
