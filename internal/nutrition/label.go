package nutrition

import "math"

// Label applies display rounding to totals for rendering on a
// nutrition-facts panel: calories, cholesterol, sodium, calcium and
// potassium round to the nearest integer, every other nutrient to one
// decimal place. The rounding is presentational only and must never
// feed back into stored totals.
func Label(t Totals) Totals {
	return Totals{
		Calories:     math.Round(t.Calories),
		TotalFat:     round1(t.TotalFat),
		SaturatedFat: round1(t.SaturatedFat),
		TransFat:     round1(t.TransFat),
		Cholesterol:  math.Round(t.Cholesterol),
		Sodium:       math.Round(t.Sodium),
		TotalCarbs:   round1(t.TotalCarbs),
		DietaryFiber: round1(t.DietaryFiber),
		TotalSugars:  round1(t.TotalSugars),
		AddedSugars:  round1(t.AddedSugars),
		Protein:      round1(t.Protein),
		VitaminD:     round1(t.VitaminD),
		Calcium:      math.Round(t.Calcium),
		Iron:         round1(t.Iron),
		Potassium:    math.Round(t.Potassium),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
