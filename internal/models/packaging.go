package models

import "github.com/jinzhu/gorm"

// Packaging is a purchasable packaging item (boxes, bags, trays).
// Price covers the whole purchased quantity; the per-unit price is
// always derived, never stored.
type Packaging struct {
	gorm.Model
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// TableName sets the table name for Packaging
func (Packaging) TableName() string {
	return "packaging"
}

// UnitPrice returns the derived price per single packaging unit, and
// false when the quantity is zero or unset.
func (p *Packaging) UnitPrice() (float64, bool) {
	if p.Quantity <= 0 {
		return 0, false
	}
	return p.Price / p.Quantity, true
}

// Utensil is a kitchen utensil tracked for inventory condition only.
// Utensil names join the catalog exclusion list so they never show up
// as priced or nutrition-bearing ingredients.
type Utensil struct {
	gorm.Model
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Condition string  `json:"condition"`
}

// TableName sets the table name for Utensil
func (Utensil) TableName() string {
	return "utensils"
}
