package api

import (
	"net/http"
	"strconv"

	"bakeshop/internal/models"
	"bakeshop/internal/monitoring"
	"bakeshop/internal/nutrition"

	"github.com/gin-gonic/gin"
)

// nutritionRow pairs a catalog ingredient name with its fact, if one
// has been entered. The nutrition page renders one row per name so
// missing facts are visible as gaps.
type nutritionRow struct {
	IngredientName string                `json:"ingredientName"`
	Fact           *models.NutritionFact `json:"fact"`
}

// ListNutrition returns one row per catalog ingredient plus any facts
// entered for names no longer in the catalog.
func (b *BakeryAPI) ListNutrition(c *gin.Context) {
	snap, err := b.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var facts []models.NutritionFact
	if err := b.DB.Find(&facts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	index := nutrition.FactIndex(facts)
	covered := make(map[string]bool)

	rows := []nutritionRow{}
	for _, ing := range snap.Entries() {
		row := nutritionRow{IngredientName: ing.Name}
		if fact, ok := index[ing.Key()]; ok {
			f := fact
			row.Fact = &f
			covered[ing.Key()] = true
		}
		rows = append(rows, row)
	}

	// Facts whose ingredient left the catalog are still shown so they
	// can be cleaned up or corrected.
	for i := range facts {
		key := models.NormalizeName(facts[i].IngredientName)
		if key == "" || covered[key] || snap.Excluded(key) {
			continue
		}
		covered[key] = true
		rows = append(rows, nutritionRow{IngredientName: facts[i].IngredientName, Fact: &facts[i]})
	}

	c.JSON(http.StatusOK, rows)
}

// UpsertNutrition creates or replaces the fact for one ingredient name.
// Lookup is by normalized name, so "Sugar" and " sugar " update the
// same record.
func (b *BakeryAPI) UpsertNutrition(c *gin.Context) {
	name := c.Param("ingredient")
	if models.NormalizeName(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
		return
	}

	var req models.NutritionFact
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fact models.NutritionFact
	err := b.DB.Where("LOWER(TRIM(ingredient_name)) = ?", models.NormalizeName(name)).First(&fact).Error
	if err != nil {
		fact = models.NutritionFact{}
	}

	id := fact.ID
	createdAt := fact.CreatedAt
	fact = req
	fact.ID = id
	fact.CreatedAt = createdAt
	fact.IngredientName = name

	if err := b.DB.Save(&fact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fact)
}

// DeleteNutrition removes one fact by id
func (b *BakeryAPI) DeleteNutrition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var fact models.NutritionFact
	if err := b.DB.First(&fact, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition fact not found"})
		return
	}
	if err := b.DB.Delete(&fact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetRecipeNutrition computes the batch and per-serving label for a
// recipe. ?servings= overrides the serving count; otherwise the
// recipe's cookie count is used, with a floor of one serving.
func (b *BakeryAPI) GetRecipeNutrition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var recipe models.Recipe
	if err := b.DB.First(&recipe, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	items, err := recipe.GetItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var facts []models.NutritionFact
	if err := b.DB.Find(&facts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	servings := recipe.NumCookies
	if raw := c.Query("servings"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be a positive integer"})
			return
		}
		servings = n
	}
	if servings < 1 {
		servings = 1
	}

	totals, skips := nutrition.Aggregate(items, nutrition.FactIndex(facts))
	perServing := nutrition.PerServing(totals, servings)

	for _, skip := range skips {
		monitoring.SkippedLines.WithLabelValues("nutrition", string(skip.Reason)).Inc()
	}
	b.Monitor.RecordComputation("nutrition", models.NormalizeName(recipe.Name), map[string]interface{}{
		"servings": servings,
		"skipped":  len(skips),
	})

	if skips == nil {
		skips = []nutrition.Skip{}
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe":     recipe.Name,
		"servings":   servings,
		"batch":      nutrition.Label(totals),
		"perServing": nutrition.Label(perServing),
		"skipped":    skips,
	})
}
