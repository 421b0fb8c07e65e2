package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mpetrov/recipebox/backend/internal/middleware"
	"github.com/mpetrov/recipebox/backend/internal/models"
	"github.com/mpetrov/recipebox/backend/internal/service"
	"github.com/mpetrov/recipebox/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	imageService  service.IImageService
}

func NewRecipeHandler(recipeService service.IRecipeService, imageService service.IImageService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		imageService:  imageService,
	}
}

// RegisterRoutes registers the recipe routes on an already-authenticated
// group. Rate limiters are optional; nil skips them.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, creationLimiter, modificationLimiter *middleware.RateLimiter) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		if creationLimiter != nil {
			recipes.POST("", creationLimiter.RateLimitMiddleware(), h.CreateRecipe)
		} else {
			recipes.POST("", h.CreateRecipe)
		}
		if modificationLimiter != nil {
			recipes.PUT("/:id", modificationLimiter.RateLimitMiddleware(), h.UpdateRecipe)
			recipes.DELETE("/:id", modificationLimiter.RateLimitMiddleware(), h.DeleteRecipe)
		} else {
			recipes.PUT("/:id", h.UpdateRecipe)
			recipes.DELETE("/:id", h.DeleteRecipe)
		}
		recipes.POST("/:id/image", h.UploadRecipeImage)
	}
}

// ListRecipes returns all of the caller's recipes, newest first, as a bare
// array. No recipes is an empty array, not an error.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch recipes", err.Error())
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Recipe not found")
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch recipe", err.Error())
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Title == "" || req.PrepTime == nil || req.CookTime == nil || req.Servings == nil || req.Difficulty == "" {
		respondError(c, http.StatusBadRequest, "Missing required fields: title, prep_time, cook_time, servings, difficulty")
		return
	}
	if !models.ValidDifficulty(req.Difficulty) {
		respondError(c, http.StatusBadRequest, "Invalid difficulty. Must be: easy, medium, or hard")
		return
	}

	// Ownership comes from the verified principal, never the request body
	recipe := models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		PrepTime:    *req.PrepTime,
		CookTime:    *req.CookTime,
		Servings:    *req.Servings,
		Difficulty:  req.Difficulty,
		ImageURL:    req.ImageURL,
		Ingredients: buildIngredients(req.Ingredients),
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create recipe", err.Error())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Recipe not found")
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Sparse update: only fields present in the body are touched
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.PrepTime != nil {
		fields["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		fields["cook_time"] = *req.CookTime
	}
	if req.Servings != nil {
		fields["servings"] = *req.Servings
	}
	if req.Difficulty != nil {
		if !models.ValidDifficulty(*req.Difficulty) {
			respondError(c, http.StatusBadRequest, "Invalid difficulty. Must be: easy, medium, or hard")
			return
		}
		fields["difficulty"] = *req.Difficulty
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	updated, err := h.recipeService.UpdateRecipe(
		c.Request.Context(), userID, id,
		fields,
		buildIngredients(req.Ingredients),
		req.HasIngredients(),
	)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update recipe", err.Error())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Recipe not found")
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete recipe", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

// buildIngredients converts submitted ingredients to models, defaulting
// order_index to array position when not supplied.
func buildIngredients(inputs []types.IngredientInput) []models.Ingredient {
	if inputs == nil {
		return nil
	}
	ingredients := make([]models.Ingredient, len(inputs))
	for i, in := range inputs {
		orderIndex := i
		if in.OrderIndex != nil {
			orderIndex = *in.OrderIndex
		}
		ingredients[i] = models.Ingredient{
			Name:       in.Name,
			Amount:     in.Amount,
			Unit:       in.Unit,
			OrderIndex: orderIndex,
		}
	}
	return ingredients
}
