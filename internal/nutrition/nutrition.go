package nutrition

import (
	"math"

	"bakeshop/internal/models"
	"bakeshop/internal/units"
)

// Totals is the summed nutrition profile of a whole recipe batch.
// Field units follow the printed label: calories as kcal, vitamins and
// minerals in mg/mcg, everything else in grams.
type Totals struct {
	Calories     float64 `json:"calories"`
	TotalFat     float64 `json:"totalFat"`
	SaturatedFat float64 `json:"saturatedFat"`
	TransFat     float64 `json:"transFat"`
	Cholesterol  float64 `json:"cholesterol"`
	Sodium       float64 `json:"sodium"`
	TotalCarbs   float64 `json:"totalCarbs"`
	DietaryFiber float64 `json:"dietaryFiber"`
	TotalSugars  float64 `json:"totalSugars"`
	AddedSugars  float64 `json:"addedSugars"`
	Protein      float64 `json:"protein"`
	VitaminD     float64 `json:"vitaminD"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`
	Potassium    float64 `json:"potassium"`
}

// SkipReason classifies why a recipe item contributed nothing
type SkipReason string

const (
	SkipInvalidFormat SkipReason = "invalid_format"
	SkipLookupMiss    SkipReason = "lookup_miss"
	SkipBadScale      SkipReason = "bad_scale"
)

// Skip records one dropped recipe item and why it was dropped
type Skip struct {
	Item   models.RecipeItem `json:"item"`
	Reason SkipReason        `json:"reason"`
}

// FactIndex builds the normalized-name lookup map the aggregator reads
// from a full nutrition collection snapshot. Later records for the same
// name overwrite earlier ones, mirroring the upsert invariant.
func FactIndex(facts []models.NutritionFact) map[string]models.NutritionFact {
	index := make(map[string]models.NutritionFact, len(facts))
	for _, f := range facts {
		if key := models.NormalizeName(f.IngredientName); key != "" {
			index[key] = f
		}
	}
	return index
}

// Aggregate computes the summed nutrition profile of a recipe's items
// against a nutrition-fact snapshot. Each item's size is parsed, its
// fact looked up by normalized name, and the fact's values scaled by
// the ratio of consumed quantity to serving basis. Items that cannot
// be parsed, have no fact, or produce a zero or non-finite scale are
// skipped and reported; the result is always a best-effort sum over
// the lines that resolved.
func Aggregate(items []models.RecipeItem, facts map[string]models.NutritionFact) (Totals, []Skip) {
	var totals Totals
	var skips []Skip

	for _, item := range items {
		measure, ok := units.ParseSizeField(item.Size)
		if !ok {
			skips = append(skips, Skip{Item: item, Reason: SkipInvalidFormat})
			continue
		}

		fact, ok := facts[models.NormalizeName(item.Name)]
		if !ok {
			skips = append(skips, Skip{Item: item, Reason: SkipLookupMiss})
			continue
		}

		servingSize, servingUnit := fact.ServingBasis()
		scale := units.ScaleFactor(measure.Quantity, measure.Unit, servingSize, servingUnit, item.Name)
		if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			skips = append(skips, Skip{Item: item, Reason: SkipBadScale})
			continue
		}

		totals.add(fact, scale)
	}

	return totals, skips
}

func (t *Totals) add(f models.NutritionFact, scale float64) {
	t.Calories += f.Calories * scale
	t.TotalFat += f.TotalFat * scale
	t.SaturatedFat += f.SaturatedFat * scale
	t.TransFat += f.TransFat * scale
	t.Cholesterol += f.Cholesterol * scale
	t.Sodium += f.Sodium * scale
	t.TotalCarbs += f.TotalCarbs * scale
	t.DietaryFiber += f.DietaryFiber * scale
	t.TotalSugars += f.TotalSugars * scale
	t.AddedSugars += f.AddedSugars * scale
	t.Protein += f.Protein * scale
	t.VitaminD += f.VitaminD * scale
	t.Calcium += f.Calcium * scale
	t.Iron += f.Iron * scale
	t.Potassium += f.Potassium * scale
}

// PerServing divides batch totals across servings. Servings below one
// default to a single serving rather than failing.
func PerServing(t Totals, servings int) Totals {
	if servings < 1 {
		servings = 1
	}
	n := float64(servings)
	return Totals{
		Calories:     t.Calories / n,
		TotalFat:     t.TotalFat / n,
		SaturatedFat: t.SaturatedFat / n,
		TransFat:     t.TransFat / n,
		Cholesterol:  t.Cholesterol / n,
		Sodium:       t.Sodium / n,
		TotalCarbs:   t.TotalCarbs / n,
		DietaryFiber: t.DietaryFiber / n,
		TotalSugars:  t.TotalSugars / n,
		AddedSugars:  t.AddedSugars / n,
		Protein:      t.Protein / n,
		VitaminD:     t.VitaminD / n,
		Calcium:      t.Calcium / n,
		Iron:         t.Iron / n,
		Potassium:    t.Potassium / n,
	}
}
