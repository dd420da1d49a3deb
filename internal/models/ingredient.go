package models

import (
	"strings"

	"github.com/jinzhu/gorm"
)

// Ingredient is a canonical price-catalog entry derived from receipt
// line items. At most one record exists per normalized name; the
// retained record carries the highest price ever observed for that
// ingredient. Cups/Tablespoons/Teaspoons record how many of each unit
// one purchased package contains; zero means not yet measured.
type Ingredient struct {
	gorm.Model
	Name        string  `json:"name"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Cups        float64 `json:"cups"`
	Tablespoons float64 `json:"tablespoons"`
	Teaspoons   float64 `json:"teaspoons"`
}

// TableName sets the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}

// Key returns the normalized lookup key for the ingredient name
func (i *Ingredient) Key() string {
	return NormalizeName(i.Name)
}

// NormalizeName trims and lower-cases an ingredient name for use as a
// catalog or nutrition lookup key
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
