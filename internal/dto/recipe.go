package dto

import (
	"encoding/json"
	"time"

	"github.com/hometrack/hometrack-api/internal/models"
)

// GenerateRecipeRequest is the body of POST /recipes/generate-recipe.
// Ingredients is decoded by the handler so a non-array value can be rejected
// with a specific message.
type GenerateRecipeRequest struct {
	Ingredients json.RawMessage `json:"ingredients"`
}

// Recipe is a reshaped Spoonacular recipe
type Recipe struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	Image          string       `json:"image"`
	ReadyInMinutes int          `json:"readyInMinutes"`
	Servings       int          `json:"servings"`
	SourceURL      string       `json:"sourceUrl"`
	Instructions   string       `json:"instructions"`
	Ingredients    []Ingredient `json:"ingredients"`
	Nutrients      []Nutrient   `json:"nutrients"`
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Nutrient is one entry of a recipe's nutrition facts
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipesResponse wraps the generated recipes
type RecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
}

// SuggestTasksRequest is the body of POST /task/suggest
type SuggestTasksRequest struct {
	Text string `json:"text" binding:"required"`
}

// SuggestedTask is a task proposed from free text. It is not persisted.
type SuggestedTask struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    models.TaskCategory `json:"category"`
	Priority    models.Priority     `json:"priority"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
}

// SuggestTasksResponse wraps the suggested tasks
type SuggestTasksResponse struct {
	Tasks []SuggestedTask `json:"tasks"`
}
