package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty levels accepted on every recipe write.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether d is one of the accepted difficulty levels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Recipe struct {
	ID          uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	UserID      uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	PrepTime    int          `gorm:"not null" json:"prep_time"`
	CookTime    int          `gorm:"not null" json:"cook_time"`
	Servings    int          `gorm:"not null" json:"servings"`
	Difficulty  string       `gorm:"size:10;not null" json:"difficulty"`
	ImageURL    string       `gorm:"size:255" json:"image_url"`
	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

type Ingredient struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Unit       string    `gorm:"size:50;not null" json:"unit"`
	OrderIndex int       `gorm:"not null" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}
