package catalog

import (
	"testing"

	"bakeshop/internal/models"
	"bakeshop/internal/units"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.AutoMigrate(&models.Ingredient{}, &models.Receipt{})
	return db
}

func countByName(t *testing.T, db *gorm.DB, name string) (int, models.Ingredient) {
	t.Helper()
	var rows []models.Ingredient
	if err := db.Where("LOWER(TRIM(name)) = ?", name).Find(&rows).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) == 0 {
		return 0, models.Ingredient{}
	}
	return len(rows), rows[0]
}

func TestIngestInsertsNewIngredient(t *testing.T) {
	store := NewStore(openTestDB(t))

	res, err := store.Ingest([]models.ReceiptItem{{Name: "Flour", Size: "5 lb", Price: "5"}})
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.Inserted != 1 {
		t.Errorf("Inserted = %d, want 1", res.Inserted)
	}

	n, ing := countByName(t, store.db, "flour")
	if n != 1 {
		t.Fatalf("flour rows = %d, want 1", n)
	}
	if ing.Price != 5 || ing.Size != "5 lb" {
		t.Errorf("stored entry = %+v", ing)
	}
}

func TestIngestIdempotentAtEqualPrice(t *testing.T) {
	store := NewStore(openTestDB(t))

	item := []models.ReceiptItem{{Name: "Flour", Price: "5"}}
	if _, err := store.Ingest(item); err != nil {
		t.Fatalf("first Ingest failed: %v", err)
	}
	res, err := store.Ingest(item)
	if err != nil {
		t.Fatalf("second Ingest failed: %v", err)
	}
	if res.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", res.Discarded)
	}

	// 5 is not strictly greater than 5: exactly one record, no growth.
	if n, _ := countByName(t, store.db, "flour"); n != 1 {
		t.Errorf("flour rows = %d, want 1", n)
	}
}

func TestIngestReplacesWithHigherPrice(t *testing.T) {
	store := NewStore(openTestDB(t))

	if _, err := store.Ingest([]models.ReceiptItem{{Name: "Flour", Size: "5 lb", Price: "5"}}); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	res, err := store.Ingest([]models.ReceiptItem{{Name: "flour", Size: "10 lb", Price: "8"}})
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.Replaced != 1 {
		t.Errorf("Replaced = %d, want 1", res.Replaced)
	}

	n, ing := countByName(t, store.db, "flour")
	if n != 1 {
		t.Fatalf("flour rows = %d, want 1", n)
	}
	if ing.Price != 8 || ing.Size != "10 lb" {
		t.Errorf("canonical entry = %+v, want price 8 size 10 lb", ing)
	}
}

func TestIngestCollapsesDuplicates(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)

	// Seed duplicates directly, as if two racing ingestions left them.
	db.Create(&models.Ingredient{Name: "Sugar", Price: 3})
	db.Create(&models.Ingredient{Name: "sugar", Price: 4})

	if _, err := store.Ingest([]models.ReceiptItem{{Name: "Sugar", Price: "6"}}); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	n, ing := countByName(t, db, "sugar")
	if n != 1 {
		t.Fatalf("sugar rows = %d, want 1 after collapse", n)
	}
	if ing.Price != 6 {
		t.Errorf("canonical price = %v, want 6", ing.Price)
	}
}

func TestIngestSkipsUnparseableAndEmpty(t *testing.T) {
	store := NewStore(openTestDB(t))

	res, err := store.Ingest([]models.ReceiptItem{
		{Name: "", Price: "5"},
		{Name: "Flour", Price: ""},
		{Name: "Sugar", Price: "cheap"},
	})
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.Inserted != 0 {
		t.Errorf("Inserted = %d, want 0", res.Inserted)
	}
	if res.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1 (the unparseable price)", res.Discarded)
	}
}

func TestRebuildFromReceipts(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)

	// A stale catalog row that the rebuild must not preserve.
	db.Create(&models.Ingredient{Name: "Stale", Price: 99})

	r1 := models.Receipt{Vendor: "Mill Co", Date: "2026-01-05"}
	r1.SetItems([]models.ReceiptItem{
		{Name: "Flour", Size: "5 lb", Price: "5"},
		{Name: "Sugar", Size: "4 lb", Price: "3"},
	})
	db.Create(&r1)

	r2 := models.Receipt{Vendor: "Mill Co", Date: "2026-02-10"}
	r2.SetItems([]models.ReceiptItem{
		{Name: "flour", Size: "10 lb", Price: "8"},
		{Name: "Eggs", Size: "", Price: ""}, // no price: ignored
	})
	db.Create(&r2)

	if _, err := store.Rebuild(); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	if n, _ := countByName(t, db, "stale"); n != 0 {
		t.Error("stale catalog row survived the rebuild")
	}
	n, flour := countByName(t, db, "flour")
	if n != 1 || flour.Price != 8 {
		t.Errorf("flour after rebuild = %d rows, %+v; want one row at price 8", n, flour)
	}
	if n, _ := countByName(t, db, "sugar"); n != 1 {
		t.Errorf("sugar rows = %d, want 1", n)
	}
	if n, _ := countByName(t, db, "eggs"); n != 0 {
		t.Error("unpriced item should not enter the catalog")
	}
}

func TestSetUnitEquivalents(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)

	ing := models.Ingredient{Name: "Flour", Price: 8}
	db.Create(&ing)

	updated, err := store.SetUnitEquivalents(ing.ID, units.UnitCup, 2)
	if err != nil {
		t.Fatalf("SetUnitEquivalents failed: %v", err)
	}
	if updated.Cups != 2 || updated.Tablespoons != 32 || updated.Teaspoons != 96 {
		t.Errorf("cups edit gave %+v, want 2/32/96", updated)
	}

	updated, err = store.SetUnitEquivalents(ing.ID, units.UnitTablespoon, 16)
	if err != nil {
		t.Fatalf("SetUnitEquivalents failed: %v", err)
	}
	if updated.Cups != 1 || updated.Tablespoons != 16 || updated.Teaspoons != 48 {
		t.Errorf("tablespoons edit gave %+v, want 1/16/48", updated)
	}

	updated, err = store.SetUnitEquivalents(ing.ID, units.UnitTeaspoon, 48)
	if err != nil {
		t.Fatalf("SetUnitEquivalents failed: %v", err)
	}
	if updated.Cups != 1 || updated.Tablespoons != 16 || updated.Teaspoons != 48 {
		t.Errorf("teaspoons edit gave %+v, want 1/16/48", updated)
	}
}

func TestSetUnitEquivalentsRejectsNonPositive(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)

	ing := models.Ingredient{Name: "Flour", Price: 8, Cups: 1}
	db.Create(&ing)

	for _, v := range []float64{0, -1} {
		if _, err := store.SetUnitEquivalents(ing.ID, units.UnitCup, v); err != ErrInvalidInput {
			t.Errorf("SetUnitEquivalents(%v) error = %v, want ErrInvalidInput", v, err)
		}
	}

	// State unchanged after rejection.
	var got models.Ingredient
	db.First(&got, ing.ID)
	if got.Cups != 1 {
		t.Errorf("Cups = %v after rejected edits, want 1", got.Cups)
	}
}
