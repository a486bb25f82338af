package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-admin/models"
	"github.com/yeremiapane/restaurant-admin/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the menu and order tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Existing rows from before ingredients were tracked
	if err := db.Exec("UPDATE menu_items SET ingredients = '[]' WHERE ingredients IS NULL OR ingredients = ''").Error; err != nil {
		utils.ErrorLogger.Printf("Error backfilling ingredients: %v", err)
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
