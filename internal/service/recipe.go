package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpetrov/recipebox/backend/internal/models"
)

// ErrRecipeNotFound covers both a nonexistent recipe and one owned by someone
// else. The two cases are deliberately indistinguishable so callers cannot
// probe for ids that exist under other owners.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe operations. Every query is scoped by the
// owner's user id; that equality filter is the sole isolation discipline.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// orderedIngredients loads ingredients by order_index; id breaks ties so the
// order stays stable across reads when indexes collide.
func orderedIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, id ASC")
}

// ListRecipes lists the caller's recipes, newest first, each with its
// ingredients attached. An owner with no recipes gets an empty slice.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Ingredients", orderedIngredients).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].Ingredients == nil {
			recipes[i].Ingredients = []models.Ingredient{}
		}
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by id for the given owner.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", orderedIngredients).
		First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.Ingredient{}
	}
	return &recipe, nil
}

// CreateRecipe inserts a recipe and its ingredients as one unit. The two
// inserts run inside a single transaction, so a failed ingredient write can
// never leave a partial recipe behind.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.ID = uuid.New()
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].ID = uuid.New()
		recipe.Ingredients[i].RecipeID = recipe.ID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipe.UserID, recipe.ID)
}

// UpdateRecipe applies a sparse update to an owned recipe. Only the fields in
// the fields map are touched. When replaceIngredients is set the existing
// ingredient set is deleted and the given one inserted in its place, even
// when it is empty; both steps share a transaction with the field update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}, ingredients []models.Ingredient, replaceIngredients bool) (*models.Recipe, error) {
	// Ownership check precedes any mutation
	var existing models.Recipe
	err := s.db.WithContext(ctx).
		Select("id").
		First(&existing, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			result := tx.Model(&models.Recipe{}).
				Where("id = ? AND user_id = ?", id, userID).
				Updates(fields)
			if result.Error != nil {
				return result.Error
			}
		}

		if replaceIngredients {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			if len(ingredients) > 0 {
				for i := range ingredients {
					ingredients[i].ID = uuid.New()
					ingredients[i].RecipeID = id
				}
				if err := tx.Create(&ingredients).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, userID, id)
}

// DeleteRecipe deletes an owned recipe; ingredients go with it by foreign-key
// cascade, not application code. A delete that matches no row reports
// ErrRecipeNotFound whether the id never existed or belongs to someone else.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Recipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// SetImageURL records the stored image location on an owned recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, userID, id uuid.UUID, imageURL string) error {
	result := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
