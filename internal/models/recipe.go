package models

import (
	"encoding/json"

	"github.com/jinzhu/gorm"
)

// Recipe represents a bakery recipe with its ingredient lines and
// cached pricing. MaterialCost, RetailCost, StorePrice, TraysMade and
// RemainingCookies are derived fields: they are recomputed from the
// current catalog snapshot on every save and persisted only as a cache,
// never treated as source of truth.
type Recipe struct {
	gorm.Model
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	ItemsJSON         string      `json:"-" gorm:"type:text"`
	MaterialCost      float64     `json:"materialCost"`
	RetailCost        float64     `json:"retailCost"`
	StorePrice        float64     `json:"storePrice"`
	NumCookies        int         `json:"numCookies"`
	CookiesPerTray    int         `json:"cookiesPerTray"`
	TraysMade         float64     `json:"traysMade"`
	RemainingCookies  int         `json:"remainingCookies"`
	SelectedPackaging StringSlice `json:"selectedPackaging" gorm:"type:text"`
	// Transient fields (ignored by GORM)
	Items []RecipeItem `json:"items" gorm:"-"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeItem is one ingredient line of a recipe. Size encodes the
// consumed quantity and unit as text, e.g. "2 cups"; it is parsed on
// demand rather than stored structurally.
type RecipeItem struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// GetItems returns the deserialized ingredient lines
func (r *Recipe) GetItems() ([]RecipeItem, error) {
	if len(r.Items) > 0 {
		return r.Items, nil
	}
	var items []RecipeItem
	if r.ItemsJSON == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(r.ItemsJSON), &items); err != nil {
		return nil, err
	}
	r.Items = items
	return items, nil
}

// SetItems serializes the ingredient lines for storage
func (r *Recipe) SetItems(items []RecipeItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.ItemsJSON = string(data)
	r.Items = items
	return nil
}
