package catalog

import (
	"sort"

	"bakeshop/internal/models"
	"bakeshop/internal/units"
)

// Catalog is a read-only snapshot of the ingredient price list, built
// once per computation from the ingredients, packaging and utensils
// collections. It is passed explicitly into costing and nutrition
// calls; there is no shared global table.
type Catalog struct {
	entries  map[string]models.Ingredient
	excluded map[string]struct{}
}

// NewCatalog builds a snapshot from full collection reads. When several
// rows share a normalized name (possible while an ingestion race is
// unresolved) the highest-priced row wins, matching the merge policy.
// Packaging types and utensil names form the cross-catalog exclusion
// set: they are hidden from ingredient and nutrition views but still
// resolvable by direct lookup.
func NewCatalog(ingredients []models.Ingredient, packaging []models.Packaging, utensils []models.Utensil) *Catalog {
	c := &Catalog{
		entries:  make(map[string]models.Ingredient, len(ingredients)),
		excluded: make(map[string]struct{}),
	}

	for _, ing := range ingredients {
		key := ing.Key()
		if key == "" {
			continue
		}
		if existing, ok := c.entries[key]; !ok || ing.Price > existing.Price {
			c.entries[key] = ing
		}
	}

	for _, p := range packaging {
		if key := models.NormalizeName(p.Type); key != "" {
			c.excluded[key] = struct{}{}
		}
	}
	for _, u := range utensils {
		if key := models.NormalizeName(u.Name); key != "" {
			c.excluded[key] = struct{}{}
		}
	}

	return c
}

// Lookup returns the canonical entry for an ingredient name,
// case-insensitively and ignoring surrounding whitespace.
func (c *Catalog) Lookup(name string) (models.Ingredient, bool) {
	ing, ok := c.entries[models.NormalizeName(name)]
	return ing, ok
}

// Excluded reports whether a name belongs to the packaging/utensil
// exclusion set.
func (c *Catalog) Excluded(name string) bool {
	_, ok := c.excluded[models.NormalizeName(name)]
	return ok
}

// Entries returns the canonical catalog entries sorted by name, with
// packaging and utensil name matches filtered out. This is the
// ingredient view the price list and nutrition pages are built from.
func (c *Catalog) Entries() []models.Ingredient {
	entries := make([]models.Ingredient, 0, len(c.entries))
	for key, ing := range c.entries {
		if _, hidden := c.excluded[key]; hidden {
			continue
		}
		entries = append(entries, ing)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key() < entries[j].Key()
	})
	return entries
}

// PricePerUnit derives the price of one cup, tablespoon or teaspoon of
// an ingredient from its package price and recorded unit equivalents.
// It reports ok=false when the equivalent for that unit is zero or
// unset, a normal displayable "unknown" state rather than an error.
func PricePerUnit(ing models.Ingredient, unit units.Unit) (float64, bool) {
	var per float64
	switch unit {
	case units.UnitCup:
		per = ing.Cups
	case units.UnitTablespoon:
		per = ing.Tablespoons
	case units.UnitTeaspoon:
		per = ing.Teaspoons
	default:
		return 0, false
	}
	if per <= 0 {
		return 0, false
	}
	return ing.Price / per, true
}
