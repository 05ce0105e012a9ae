package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
)

// Migrate creates the recipes table when it is missing. Column changes
// beyond what gorm's auto-migration handles are out of scope.
func Migrate(db *gorm.DB) error {
	log.Printf("Ensuring recipes schema on %s", db.Dialector.Name())
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}
