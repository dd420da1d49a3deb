package api

import (
	"errors"
	"net/http"

	"bakeshop/internal/catalog"
	"bakeshop/internal/models"
	"bakeshop/internal/units"

	"github.com/gin-gonic/gin"
)

// ingredientView is a catalog entry with its derived per-unit prices.
// A nil price means the equivalent for that unit has not been recorded
// yet; the UI shows it blank.
type ingredientView struct {
	models.Ingredient
	CupPrice        *float64 `json:"cupPrice"`
	TablespoonPrice *float64 `json:"tablespoonPrice"`
	TeaspoonPrice   *float64 `json:"teaspoonPrice"`
}

// ListIngredients serves the deduplicated price list with derived
// per-unit prices, excluding packaging and utensil name matches.
func (b *BakeryAPI) ListIngredients(c *gin.Context) {
	snap, err := b.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entries := snap.Entries()
	views := make([]ingredientView, 0, len(entries))
	for _, ing := range entries {
		view := ingredientView{Ingredient: ing}
		if p, ok := catalog.PricePerUnit(ing, units.UnitCup); ok {
			view.CupPrice = &p
		}
		if p, ok := catalog.PricePerUnit(ing, units.UnitTablespoon); ok {
			view.TablespoonPrice = &p
		}
		if p, ok := catalog.PricePerUnit(ing, units.UnitTeaspoon); ok {
			view.TeaspoonPrice = &p
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// RefreshIngredients drops the catalog and rebuilds it from stored
// receipts
func (b *BakeryAPI) RefreshIngredients(c *gin.Context) {
	res, err := b.Store.Rebuild()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b.Monitor.RecordComputation("rebuild", "catalog", map[string]interface{}{
		"inserted": res.Inserted,
		"replaced": res.Replaced,
	})
	c.JSON(http.StatusOK, gin.H{"inserted": res.Inserted, "replaced": res.Replaced, "discarded": res.Discarded})
}

// SetIngredientUnits records a unit equivalent for an ingredient and
// returns the entry with all three equivalents recomputed
func (b *BakeryAPI) SetIngredientUnits(c *gin.Context) {
	var req struct {
		Unit  string  `json:"unit" binding:"required"`
		Value float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	ing, err := b.Store.SetUnitEquivalents(id, units.Normalize(req.Unit), req.Value)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a positive number"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ing)
}

// DeleteIngredient removes a catalog entry explicitly
func (b *BakeryAPI) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var ing models.Ingredient
	if err := b.DB.First(&ing, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	if err := b.DB.Delete(&ing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
