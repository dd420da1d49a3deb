package api

import (
	"net/http"

	"bakeshop/internal/models"

	"github.com/gin-gonic/gin"
)

// packagingView adds the derived per-unit price to a packaging record
type packagingView struct {
	models.Packaging
	UnitPrice *float64 `json:"unitPrice"`
}

// ListPackaging returns all packaging supplies with derived unit prices
func (b *BakeryAPI) ListPackaging(c *gin.Context) {
	var packaging []models.Packaging
	if err := b.DB.Find(&packaging).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]packagingView, 0, len(packaging))
	for i := range packaging {
		view := packagingView{Packaging: packaging[i]}
		if p, ok := packaging[i].UnitPrice(); ok {
			view.UnitPrice = &p
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// CreatePackaging records a packaging supply purchase
func (b *BakeryAPI) CreatePackaging(c *gin.Context) {
	var req struct {
		Type     string  `json:"type" binding:"required"`
		Quantity float64 `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	packaging := models.Packaging{Type: req.Type, Quantity: req.Quantity, Price: req.Price}
	if err := b.DB.Create(&packaging).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, packaging)
}

// DeletePackaging removes a packaging supply
func (b *BakeryAPI) DeletePackaging(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var packaging models.Packaging
	if err := b.DB.First(&packaging, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Packaging not found"})
		return
	}
	if err := b.DB.Delete(&packaging).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListUtensils returns the utensil inventory
func (b *BakeryAPI) ListUtensils(c *gin.Context) {
	var utensils []models.Utensil
	if err := b.DB.Find(&utensils).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, utensils)
}

// CreateUtensil records a utensil
func (b *BakeryAPI) CreateUtensil(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Quantity  int    `json:"quantity"`
		Condition string `json:"condition"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utensil := models.Utensil{Name: req.Name, Quantity: float64(req.Quantity), Condition: req.Condition}
	if err := b.DB.Create(&utensil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, utensil)
}
