package database

import (
	"github.com/mpetrov/recipebox/backend/internal/models"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. The ingredient foreign key carries
// ON DELETE CASCADE, so recipe deletion removes ingredient rows in the store
// rather than in application code.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Ingredient{},
	)
}
