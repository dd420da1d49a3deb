package database

import (
	"fmt"

	"bakeshop/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // Postgres driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *gorm.DB

// InitDB opens the database connection. Driver is "sqlite3" or
// "postgres"; source is the file path or connection string.
func InitDB(driver, source string) error {
	var err error
	DB, err = gorm.Open(driver, source)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return nil
}

// Migrate creates or updates every table the back office uses
func Migrate() error {
	return DB.AutoMigrate(
		&models.Receipt{},
		&models.Ingredient{},
		&models.NutritionFact{},
		&models.Recipe{},
		&models.Packaging{},
		&models.Utensil{},
	).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
