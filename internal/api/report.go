package api

import (
	"net/http"
	"time"

	"bakeshop/internal/models"
	"bakeshop/internal/reports"

	"github.com/gin-gonic/gin"
)

// GetReport filters receipts by vendor and reporting window. The date
// query parameter anchors the window and its expected layout follows
// the range: 2006-01-02 for weekly, 2006-01 for monthly, 2006 for
// yearly. A missing date anchors on today.
func (b *BakeryAPI) GetReport(c *gin.Context) {
	vendor := c.Query("vendor")
	rng := reports.Range(c.DefaultQuery("range", string(reports.RangeAll)))

	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		layout := "2006-01-02"
		switch rng {
		case reports.RangeMonthly:
			layout = "2006-01"
		case reports.RangeYearly:
			layout = "2006"
		}
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date for range " + string(rng)})
			return
		}
		anchor = parsed
	}

	var receipts []models.Receipt
	if err := b.DB.Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range receipts {
		if _, err := receipts[i].GetItems(); err != nil {
			continue
		}
	}

	window := reports.NewWindow(rng, anchor)
	report := reports.Filter(receipts, vendor, window)

	resp := gin.H{
		"vendor":   vendor,
		"range":    rng,
		"receipts": report.Receipts,
		"total":    report.Total,
		"vendors":  reports.Vendors(receipts),
	}
	if window != nil {
		resp["start"] = window.Start.Format("2006-01-02")
		resp["end"] = window.End.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, resp)
}
