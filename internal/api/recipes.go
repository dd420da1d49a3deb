package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"bakeshop/internal/costing"
	"bakeshop/internal/models"
	"bakeshop/internal/monitoring"
	"bakeshop/internal/units"

	"github.com/gin-gonic/gin"
)

// recipeRequest carries the recipe editor fields. Items arrive as raw
// lines of the form "Flour: 2 cups".
type recipeRequest struct {
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description"`
	Items             []string `json:"items" binding:"required"`
	NumCookies        int      `json:"numCookies"`
	CookiesPerTray    int      `json:"cookiesPerTray"`
	SelectedPackaging []string `json:"selectedPackaging"`
}

// ListRecipes returns all recipes with their ingredient lines
func (b *BakeryAPI) ListRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := b.DB.Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range recipes {
		if _, err := recipes[i].GetItems(); err != nil {
			log.Printf("Failed to decode items for recipe %d: %v", recipes[i].ID, err)
		}
	}
	c.JSON(http.StatusOK, recipes)
}

// CreateRecipe validates, prices and stores a new recipe
func (b *BakeryAPI) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recipe models.Recipe
	if !b.applyRecipeRequest(c, &recipe, req) {
		return
	}

	if err := b.DB.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe revalidates and reprices an existing recipe. Derived
// cost fields are always recomputed in full from the current snapshot,
// never patched incrementally, so they cannot drift from their
// formulas.
func (b *BakeryAPI) UpdateRecipe(c *gin.Context) {
	recipeID := c.Param("id")
	var recipe models.Recipe
	if err := b.DB.First(&recipe, recipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !b.applyRecipeRequest(c, &recipe, req) {
		return
	}

	if err := b.DB.Save(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe
func (b *BakeryAPI) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var recipe models.Recipe
	if err := b.DB.First(&recipe, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err := b.DB.Delete(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// applyRecipeRequest parses and validates the request into the recipe
// and recomputes every derived field. It writes the error response and
// returns false when validation fails.
func (b *BakeryAPI) applyRecipeRequest(c *gin.Context, recipe *models.Recipe, req recipeRequest) bool {
	items, invalid := parseRecipeLines(req.Items)
	if len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "Invalid ingredient line(s); each line must look like: Flour: 2 cups",
			"invalidLines": invalid,
		})
		return false
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter at least one ingredient line like \"Flour: 2 cups\""})
		return false
	}

	snap, err := b.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.NumCookies = req.NumCookies
	recipe.CookiesPerTray = req.CookiesPerTray
	recipe.SelectedPackaging = models.StringSlice(req.SelectedPackaging)
	if err := recipe.SetItems(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}

	trays, remaining, ok := costing.TraysAndRemainder(req.NumCookies, req.CookiesPerTray)
	if ok {
		recipe.TraysMade = float64(trays)
		recipe.RemainingCookies = remaining
	} else {
		recipe.TraysMade = 0
		recipe.RemainingCookies = 0
	}

	materialCost, skips := costing.MaterialCost(items, snap)
	for _, skip := range skips {
		log.Printf("Skipping recipe line %s", skip)
		monitoring.SkippedLines.WithLabelValues("costing", string(skip.Reason)).Inc()
	}

	packagingPrices, err := b.packagingUnitPrices(req.SelectedPackaging)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}

	retail, store := costing.RetailAndStorePrice(materialCost, recipe.TraysMade, packagingPrices)
	recipe.MaterialCost = materialCost
	recipe.RetailCost = retail
	recipe.StorePrice = store

	monitoring.Recomputations.Inc()
	b.Monitor.RecordComputation("recost", models.NormalizeName(recipe.Name), map[string]interface{}{
		"material_cost": materialCost,
		"skipped":       len(skips),
	})
	b.hub.broadcast(recostEvent{
		Type:         "recost",
		RecipeID:     recipe.ID,
		Recipe:       recipe.Name,
		MaterialCost: materialCost,
		RetailCost:   retail,
		StorePrice:   store,
		SkippedLines: len(skips),
	})

	return true
}

// parseRecipeLines validates raw editor lines, returning structured
// items and the lines that failed. Unlike costing's per-line skips, a
// save rejects the whole batch when any line is invalid so the stored
// recipe only ever contains well-formed items.
func parseRecipeLines(lines []string) ([]models.RecipeItem, []string) {
	var items []models.RecipeItem
	var invalid []string
	for _, line := range lines {
		parsed, ok := units.ParseIngredientLine(line)
		if !ok {
			invalid = append(invalid, line)
			continue
		}
		items = append(items, models.RecipeItem{
			Name: parsed.Display,
			Size: fmt.Sprintf("%g %s", parsed.Quantity, parsed.Unit),
		})
	}
	return items, invalid
}

// packagingUnitPrices resolves selected packaging ids to their derived
// per-unit prices; ids that no longer resolve contribute nothing.
func (b *BakeryAPI) packagingUnitPrices(selected []string) ([]float64, error) {
	if len(selected) == 0 {
		return nil, nil
	}
	var packaging []models.Packaging
	if err := b.DB.Where("id IN (?)", selected).Find(&packaging).Error; err != nil {
		return nil, err
	}
	var prices []float64
	for i := range packaging {
		if unitPrice, ok := packaging[i].UnitPrice(); ok {
			prices = append(prices, unitPrice)
		}
	}
	return prices, nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
