package models

import "github.com/jinzhu/gorm"

// NutritionFact holds the nutrition label values for one ingredient,
// declared per serving basis (ServingSize in ServingUnit). At most one
// record exists per normalized ingredient name, enforced by
// lookup-then-upsert on save.
type NutritionFact struct {
	gorm.Model
	IngredientName string  `json:"ingredientName"`
	ServingSize    float64 `json:"servingSize"`
	ServingUnit    string  `json:"servingUnit"`
	Calories       float64 `json:"calories"`
	TotalFat       float64 `json:"totalFat"`
	SaturatedFat   float64 `json:"saturatedFat"`
	TransFat       float64 `json:"transFat"`
	Cholesterol    float64 `json:"cholesterol"`
	Sodium         float64 `json:"sodium"`
	TotalCarbs     float64 `json:"totalCarbs"`
	DietaryFiber   float64 `json:"dietaryFiber"`
	TotalSugars    float64 `json:"totalSugars"`
	AddedSugars    float64 `json:"addedSugars"`
	Protein        float64 `json:"protein"`
	VitaminD       float64 `json:"vitaminD"`
	Calcium        float64 `json:"calcium"`
	Iron           float64 `json:"iron"`
	Potassium      float64 `json:"potassium"`
}

// TableName sets the table name for NutritionFact
func (NutritionFact) TableName() string {
	return "ingredient_nutrition"
}

// ServingBasis returns the declared serving size and unit with their
// documented defaults applied (size 1, unit gram).
func (f *NutritionFact) ServingBasis() (float64, string) {
	size := f.ServingSize
	if size == 0 {
		size = 1
	}
	unit := f.ServingUnit
	if unit == "" {
		unit = "gram"
	}
	return size, unit
}
