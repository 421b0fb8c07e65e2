package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mpetrov/recipebox/backend/internal/middleware"
	"github.com/mpetrov/recipebox/backend/internal/service"
)

// UploadRecipeImage stores a photo for an owned recipe and records its URL.
func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
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

	// Ownership check before touching storage
	if _, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			respondError(c, http.StatusNotFound, "Recipe not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch recipe", err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read image", err.Error())
		return
	}
	defer file.Close()

	imageURL, err := h.imageService.UploadRecipeImage(
		c.Request.Context(), id,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrImageStorageNotConfigured) {
			respondError(c, http.StatusInternalServerError, "Image storage is not configured")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to upload image", err.Error())
		return
	}

	if err := h.recipeService.SetImageURL(c.Request.Context(), userID, id, imageURL); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update recipe image", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}
