package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bakeshop/internal/models"
	"bakeshop/internal/units"

	"github.com/jinzhu/gorm"
)

// ErrInvalidInput is returned when a setter receives a non-positive or
// non-numeric value
var ErrInvalidInput = errors.New("value must be a positive number")

// Store performs the effectful catalog operations against the database.
// Reads for computation go through Catalog snapshots instead; the store
// exists for ingestion, rebuild and unit-equivalent edits.
type Store struct {
	db *gorm.DB
}

// NewStore creates a catalog store on an open database handle
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// IngestResult reports what one ingestion call did, mostly for
// operator-facing logs and metrics.
type IngestResult struct {
	Inserted  int
	Replaced  int
	Discarded int
}

// Ingest merges receipt line items into the catalog under the
// highest-price policy: a new name inserts; a price strictly above the
// highest existing price for that name replaces the highest-priced
// record's size and price in place and deletes every other same-name
// row; anything else is discarded. Receipts are the ground truth for
// worst-case cost, so the most expensive observation per ingredient is
// the one kept. The whole call runs in one transaction so the
// read-then-write-and-delete sequence is atomic per ingestion; two
// concurrent ingestions of the same name are not isolated from each
// other and callers should serialize them.
func (s *Store) Ingest(items []models.ReceiptItem) (IngestResult, error) {
	var res IngestResult

	tx := s.db.Begin()
	if tx.Error != nil {
		return res, tx.Error
	}

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" || strings.TrimSpace(item.Price) == "" {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(item.Price), 64)
		if err != nil {
			res.Discarded++
			continue
		}

		var existing []models.Ingredient
		if err := tx.Where("LOWER(TRIM(name)) = ?", models.NormalizeName(name)).Find(&existing).Error; err != nil {
			tx.Rollback()
			return res, fmt.Errorf("failed to query ingredient %q: %w", name, err)
		}

		if len(existing) == 0 {
			ing := models.Ingredient{Name: name, Size: item.Size, Price: price}
			if err := tx.Create(&ing).Error; err != nil {
				tx.Rollback()
				return res, fmt.Errorf("failed to insert ingredient %q: %w", name, err)
			}
			res.Inserted++
			continue
		}

		highest := existing[0]
		for _, ing := range existing[1:] {
			if ing.Price > highest.Price {
				highest = ing
			}
		}

		if price <= highest.Price {
			res.Discarded++
			continue
		}

		if err := tx.Model(&highest).Updates(map[string]interface{}{
			"size":  item.Size,
			"price": price,
		}).Error; err != nil {
			tx.Rollback()
			return res, fmt.Errorf("failed to update ingredient %q: %w", name, err)
		}
		for _, ing := range existing {
			if ing.ID == highest.ID {
				continue
			}
			if err := tx.Delete(&ing).Error; err != nil {
				tx.Rollback()
				return res, fmt.Errorf("failed to collapse duplicate %q: %w", name, err)
			}
		}
		res.Replaced++
	}

	return res, tx.Commit().Error
}

// Rebuild drops the entire catalog and re-ingests every line item from
// every stored receipt, using the same highest-price merge as live
// ingestion so the rebuilt catalog matches incremental results.
func (s *Store) Rebuild() (IngestResult, error) {
	if err := s.db.Delete(&models.Ingredient{}).Error; err != nil {
		return IngestResult{}, fmt.Errorf("failed to clear catalog: %w", err)
	}

	var receipts []models.Receipt
	if err := s.db.Find(&receipts).Error; err != nil {
		return IngestResult{}, fmt.Errorf("failed to load receipts: %w", err)
	}

	var all []models.ReceiptItem
	for i := range receipts {
		items, err := receipts[i].GetItems()
		if err != nil {
			continue
		}
		for _, item := range items {
			if strings.TrimSpace(item.Name) != "" && strings.TrimSpace(item.Price) != "" {
				all = append(all, item)
			}
		}
	}

	return s.Ingest(all)
}

// SetUnitEquivalents records how many cups, tablespoons or teaspoons
// one purchased package of the ingredient contains. Given any one of
// the three, the other two are recomputed through the fixed ratios
// 1 cup = 16 tbsp = 48 tsp and all three are persisted together.
func (s *Store) SetUnitEquivalents(id uint, unit units.Unit, value float64) (models.Ingredient, error) {
	var ing models.Ingredient
	if math.IsNaN(value) || value <= 0 {
		return ing, ErrInvalidInput
	}

	var cups, tablespoons, teaspoons float64
	switch unit {
	case units.UnitCup:
		cups = value
		tablespoons = value * 16
		teaspoons = value * 48
	case units.UnitTablespoon:
		cups = value / 16
		tablespoons = value
		teaspoons = value * 3
	case units.UnitTeaspoon:
		cups = value / 48
		tablespoons = value / 3
		teaspoons = value
	default:
		return ing, fmt.Errorf("unit %q has no stored equivalent", unit)
	}

	if err := s.db.First(&ing, id).Error; err != nil {
		return ing, err
	}
	if err := s.db.Model(&ing).Updates(map[string]interface{}{
		"cups":        cups,
		"tablespoons": tablespoons,
		"teaspoons":   teaspoons,
	}).Error; err != nil {
		return ing, err
	}

	ing.Cups = cups
	ing.Tablespoons = tablespoons
	ing.Teaspoons = teaspoons
	return ing, nil
}
