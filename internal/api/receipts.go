package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"bakeshop/internal/models"
	"bakeshop/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// receiptRequest carries the receipt form fields. Items arrive as the
// raw text the operator typed, one "Name: Size: Price" line per item.
type receiptRequest struct {
	Vendor   string `json:"vendor" binding:"required"`
	Amount   string `json:"amount"`
	Method   string `json:"method" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Invoice  string `json:"invoice"`
	Items    string `json:"items"`
	ImageURL string `json:"imageUrl"`
}

// ListReceipts returns all receipts with their line items
func (b *BakeryAPI) ListReceipts(c *gin.Context) {
	var receipts []models.Receipt
	if err := b.DB.Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range receipts {
		if _, err := receipts[i].GetItems(); err != nil {
			log.Printf("Failed to decode items for receipt %d: %v", receipts[i].ID, err)
		}
	}
	c.JSON(http.StatusOK, receipts)
}

// CreateReceipt stores a new receipt and ingests its line items into
// the price catalog. An empty amount is filled in by summing the
// parsed line prices, matching manual entry behavior.
func (b *BakeryAPI) CreateReceipt(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt := models.Receipt{
		Vendor:   req.Vendor,
		Amount:   req.Amount,
		Method:   req.Method,
		Date:     req.Date,
		Invoice:  req.Invoice,
		ImageURL: req.ImageURL,
	}
	items := models.ParseItemLines(req.Items)
	if err := receipt.SetItems(items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if receipt.Amount == "" {
		receipt.Amount = sumItemPrices(items)
	}

	b.ingestItems(items)

	if err := b.DB.Create(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// UpdateReceipt replaces a receipt's fields and re-ingests its items
func (b *BakeryAPI) UpdateReceipt(c *gin.Context) {
	receiptID := c.Param("id")
	var receipt models.Receipt
	if err := b.DB.First(&receipt, receiptID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}

	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt.Vendor = req.Vendor
	receipt.Amount = req.Amount
	receipt.Method = req.Method
	receipt.Date = req.Date
	receipt.Invoice = req.Invoice
	if req.ImageURL != "" {
		receipt.ImageURL = req.ImageURL
	}
	items := models.ParseItemLines(req.Items)
	if err := receipt.SetItems(items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if receipt.Amount == "" {
		receipt.Amount = sumItemPrices(items)
	}

	b.ingestItems(items)

	if err := b.DB.Save(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// DeleteReceipt removes a receipt. Catalog entries derived from it are
// intentionally left alone; the refresh flow rebuilds the catalog from
// the receipts that remain.
func (b *BakeryAPI) DeleteReceipt(c *gin.Context) {
	receiptID := c.Param("id")
	var receipt models.Receipt
	if err := b.DB.First(&receipt, receiptID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	if err := b.DB.Delete(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ExtractReceiptItems runs the LLM extractor over pasted receipt text
func (b *BakeryAPI) ExtractReceiptItems(c *gin.Context) {
	if b.Extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Receipt extraction is not configured"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := b.Extractor.Extract(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ingestItems merges receipt items into the catalog and records the
// outcome; ingestion failures are logged, not fatal to the receipt
// save.
func (b *BakeryAPI) ingestItems(items []models.ReceiptItem) {
	res, err := b.Store.Ingest(items)
	if err != nil {
		log.Printf("Catalog ingestion failed: %v", err)
		return
	}
	monitoring.IngestedItems.WithLabelValues("inserted").Add(float64(res.Inserted))
	monitoring.IngestedItems.WithLabelValues("replaced").Add(float64(res.Replaced))
	monitoring.IngestedItems.WithLabelValues("discarded").Add(float64(res.Discarded))
	b.Monitor.RecordComputation("ingest", "receipts", map[string]interface{}{
		"inserted":  res.Inserted,
		"replaced":  res.Replaced,
		"discarded": res.Discarded,
	})
}

func sumItemPrices(items []models.ReceiptItem) string {
	var total float64
	for _, item := range items {
		if price, err := strconv.ParseFloat(strings.TrimSpace(item.Price), 64); err == nil {
			total += price
		}
	}
	return strconv.FormatFloat(total, 'f', 2, 64)
}
