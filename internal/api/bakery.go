package api

import (
	"net/http"

	"bakeshop/internal/catalog"
	"bakeshop/internal/extract"
	"bakeshop/internal/models"
	"bakeshop/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// BakeryAPI is the HTTP surface of the back office. All computation
// endpoints follow read-snapshot-then-compute: they load the full
// relevant collections, build in-memory maps and run the pure engines
// against those, so results are consistent within a single request.
type BakeryAPI struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Store     *catalog.Store
	Monitor   *monitoring.Monitor
	Extractor *extract.Extractor

	hub *hub
}

// NewBakeryAPI creates the API on an open database handle. The
// extractor is optional; pass nil when no LLM is configured and the
// extraction endpoint reports itself unavailable.
func NewBakeryAPI(db *gorm.DB, monitor *monitoring.Monitor, extractor *extract.Extractor) *BakeryAPI {
	api := &BakeryAPI{
		Router:    gin.Default(),
		DB:        db,
		Store:     catalog.NewStore(db),
		Monitor:   monitor,
		Extractor: extractor,
		hub:       newHub(),
	}

	api.setupRoutes()
	return api
}

// setupRoutes configures all API endpoints
func (b *BakeryAPI) setupRoutes() {
	// Health check
	b.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Bakeshop API is running"})
	})

	// Live recompute feed
	b.Router.GET("/ws", b.hub.handleConnection)

	v1 := b.Router.Group("/api/v1")
	{
		// Receipts
		v1.GET("/receipts", b.ListReceipts)
		v1.POST("/receipts", b.CreateReceipt)
		v1.PUT("/receipts/:id", b.UpdateReceipt)
		v1.DELETE("/receipts/:id", b.DeleteReceipt)
		v1.POST("/receipts/extract", b.ExtractReceiptItems)

		// Ingredient price catalog
		v1.GET("/ingredients", b.ListIngredients)
		v1.POST("/ingredients/refresh", b.RefreshIngredients)
		v1.PUT("/ingredients/:id/units", b.SetIngredientUnits)
		v1.DELETE("/ingredients/:id", b.DeleteIngredient)

		// Nutrition facts
		v1.GET("/nutrition", b.ListNutrition)
		v1.PUT("/nutrition/:ingredient", b.UpsertNutrition)
		v1.DELETE("/nutrition/:id", b.DeleteNutrition)

		// Recipes
		v1.GET("/recipes", b.ListRecipes)
		v1.POST("/recipes", b.CreateRecipe)
		v1.PUT("/recipes/:id", b.UpdateRecipe)
		v1.DELETE("/recipes/:id", b.DeleteRecipe)
		v1.GET("/recipes/:id/nutrition", b.GetRecipeNutrition)

		// Packaging and utensils
		v1.GET("/packaging", b.ListPackaging)
		v1.POST("/packaging", b.CreatePackaging)
		v1.DELETE("/packaging/:id", b.DeletePackaging)
		v1.GET("/utensils", b.ListUtensils)
		v1.POST("/utensils", b.CreateUtensil)

		// Reports and monitoring
		v1.GET("/reports", b.GetReport)
		v1.GET("/metrics", b.GetMetrics)
	}
}

// snapshot loads the catalog collections and builds the read-only
// snapshot the pure engines compute against.
func (b *BakeryAPI) snapshot() (*catalog.Catalog, error) {
	var ingredients []models.Ingredient
	if err := b.DB.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	var packaging []models.Packaging
	if err := b.DB.Find(&packaging).Error; err != nil {
		return nil, err
	}
	var utensils []models.Utensil
	if err := b.DB.Find(&utensils).Error; err != nil {
		return nil, err
	}
	return catalog.NewCatalog(ingredients, packaging, utensils), nil
}

// GetMetrics serves the monitor's metric snapshot
func (b *BakeryAPI) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, b.Monitor.GetMetrics())
}
