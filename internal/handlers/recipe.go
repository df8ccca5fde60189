package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/dto"
	apierrors "github.com/hometrack/hometrack-api/internal/errors"
	"github.com/hometrack/hometrack-api/internal/services"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
	logger        *slog.Logger
}

func NewRecipeHandler(recipeService *services.RecipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		logger:        logger,
	}
}

// GenerateRecipe suggests recipes that use the given ingredients
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req dto.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var ingredients []string
	if len(req.Ingredients) == 0 || json.Unmarshal(req.Ingredients, &ingredients) != nil || ingredients == nil {
		apierrors.BadRequest(c, "Ingredients must be an array")
		return
	}

	if !h.recipeService.Configured() {
		apierrors.ServiceUnavailable(c, "Recipe service is not configured")
		return
	}

	recipes, err := h.recipeService.Generate(c.Request.Context(), ingredients)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotConfigured) {
			apierrors.ServiceUnavailable(c, "Recipe service is not configured")
			return
		}
		_ = c.Error(err)
		h.logger.Error("Recipe search failed", "error", err)
		apierrors.InternalErrorWithDetails(c, "Failed to fetch recipes", err)
		return
	}

	c.JSON(http.StatusOK, dto.RecipesResponse{Recipes: recipes})
}
