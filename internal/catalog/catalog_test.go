package catalog

import (
	"testing"

	"bakeshop/internal/models"
	"bakeshop/internal/units"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog([]models.Ingredient{
		{Name: "Flour", Price: 4, Cups: 1},
		{Name: "Sugar", Price: 3},
	}, nil, nil)

	ing, ok := c.Lookup("flour")
	if !ok {
		t.Fatal("Lookup(\"flour\") missed, want hit")
	}
	if ing.Price != 4 {
		t.Errorf("Price = %v, want 4", ing.Price)
	}

	// Case-insensitive and whitespace-tolerant.
	if _, ok := c.Lookup("  FLOUR "); !ok {
		t.Error("Lookup(\"  FLOUR \") missed, want hit")
	}

	if _, ok := c.Lookup("butter"); ok {
		t.Error("Lookup(\"butter\") hit, want miss")
	}
}

func TestCatalogKeepsHighestPricedDuplicate(t *testing.T) {
	c := NewCatalog([]models.Ingredient{
		{Name: "Flour", Price: 4},
		{Name: "flour", Price: 7, Size: "10 lb"},
		{Name: "FLOUR", Price: 5},
	}, nil, nil)

	ing, ok := c.Lookup("flour")
	if !ok {
		t.Fatal("Lookup missed, want hit")
	}
	if ing.Price != 7 || ing.Size != "10 lb" {
		t.Errorf("canonical entry = %+v, want the price-7 row", ing)
	}
	if n := len(c.Entries()); n != 1 {
		t.Errorf("Entries() has %d rows, want 1", n)
	}
}

func TestCatalogExclusion(t *testing.T) {
	c := NewCatalog(
		[]models.Ingredient{
			{Name: "Flour", Price: 4},
			{Name: "Cookie Box", Price: 9},
			{Name: "Spatula", Price: 2},
		},
		[]models.Packaging{{Type: "Cookie Box", Quantity: 50, Price: 12}},
		[]models.Utensil{{Name: "Spatula", Quantity: 3, Condition: "good"}},
	)

	entries := c.Entries()
	if len(entries) != 1 || entries[0].Name != "Flour" {
		t.Errorf("Entries() = %+v, want only Flour", entries)
	}

	if !c.Excluded("cookie box") || !c.Excluded("SPATULA") {
		t.Error("packaging/utensil names should be excluded")
	}
	if c.Excluded("flour") {
		t.Error("flour should not be excluded")
	}

	// Direct lookup still resolves excluded names; only views hide them.
	if _, ok := c.Lookup("Cookie Box"); !ok {
		t.Error("Lookup should still resolve excluded names")
	}
}

func TestPricePerUnit(t *testing.T) {
	ing := models.Ingredient{Name: "Flour", Price: 8, Cups: 4, Tablespoons: 64, Teaspoons: 192}

	if got, ok := PricePerUnit(ing, units.UnitCup); !ok || got != 2 {
		t.Errorf("cup price = %v (%v), want 2", got, ok)
	}
	if got, ok := PricePerUnit(ing, units.UnitTablespoon); !ok || got != 0.125 {
		t.Errorf("tablespoon price = %v (%v), want 0.125", got, ok)
	}
	if got, ok := PricePerUnit(ing, units.UnitTeaspoon); !ok || got*48 != 2 {
		t.Errorf("teaspoon price = %v (%v), want 2/48", got, ok)
	}
}

func TestPricePerUnitUnknown(t *testing.T) {
	// No recorded equivalents: a displayable unknown, not an error.
	ing := models.Ingredient{Name: "Flour", Price: 8}
	if _, ok := PricePerUnit(ing, units.UnitCup); ok {
		t.Error("unset cups should report ok=false")
	}
	// Non-volume units have no stored equivalent at all.
	if _, ok := PricePerUnit(ing, units.UnitGram); ok {
		t.Error("gram should report ok=false")
	}
}
