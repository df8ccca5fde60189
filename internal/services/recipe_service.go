package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hometrack/hometrack-api/internal/constants"
	"github.com/hometrack/hometrack-api/internal/dto"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecipeNotConfigured = errors.New("recipe service is not configured")
	ErrRecipeSearchFailed  = errors.New("recipe search failed")
)

// RecipeConfig configures the Spoonacular client
type RecipeConfig struct {
	APIKey  string
	BaseURL string
	Cuisine string
	Timeout time.Duration
	Logger  *slog.Logger
}

// RecipeService suggests recipes for a list of ingredients using Spoonacular
type RecipeService struct {
	client      *http.Client
	apiKey      string
	baseURL     string
	cuisine     string
	concurrency int
	logger      *slog.Logger
}

// NewRecipeService creates a RecipeService. Empty fields fall back to defaults.
func NewRecipeService(cfg RecipeConfig) *RecipeService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultRecipeBaseURL
	}
	if cfg.Cuisine == "" {
		cfg.Cuisine = constants.DefaultRecipeCuisine
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.DefaultHTTPClientTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &RecipeService{
		client:      &http.Client{Timeout: cfg.Timeout},
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		cuisine:     cfg.Cuisine,
		concurrency: constants.RecipeDetailConcurrency,
		logger:      cfg.Logger,
	}
}

// Configured reports whether an API key is set
func (s *RecipeService) Configured() bool {
	return s != nil && s.apiKey != ""
}

type searchResponse struct {
	Results []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	} `json:"results"`
}

type recipeInformation struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Image               string `json:"image"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	Servings            int    `json:"servings"`
	SourceURL           string `json:"sourceUrl"`
	Instructions        string `json:"instructions"`
	ExtendedIngredients []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	} `json:"extendedIngredients"`
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
			Unit   string  `json:"unit"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// Generate searches recipes using the ingredients and returns the candidates
// whose details could be fetched. Only a failed search is an error.
func (s *RecipeService) Generate(ctx context.Context, ingredients []string) ([]dto.Recipe, error) {
	if !s.Configured() {
		return nil, ErrRecipeNotConfigured
	}

	ids, err := s.search(ctx, ingredients)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecipeSearchFailed, err)
	}

	return s.collectDetails(ctx, ids), nil
}

func (s *RecipeService) search(ctx context.Context, ingredients []string) ([]int, error) {
	query := url.Values{}
	query.Set("apiKey", s.apiKey)
	query.Set("includeIngredients", strings.Join(ingredients, ","))
	query.Set("number", strconv.Itoa(constants.RecipeResultCount))
	query.Set("cuisine", s.cuisine)

	var resp searchResponse
	if err := s.getJSON(ctx, "/recipes/complexSearch", query, &resp); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(resp.Results))
	for _, r := range resp.Results {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// collectDetails fetches every recipe concurrently. A failed fetch is logged
// and dropped without cancelling the others; the search order is kept.
func (s *RecipeService) collectDetails(ctx context.Context, ids []int) []dto.Recipe {
	details := make([]*dto.Recipe, len(ids))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			recipe, err := s.fetchDetails(ctx, id)
			if err != nil {
				s.logger.Warn("Failed to fetch recipe details", "recipe_id", id, "error", err)
				return nil
			}
			details[i] = recipe
			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]dto.Recipe, 0, len(ids))
	for _, r := range details {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes
}

func (s *RecipeService) fetchDetails(ctx context.Context, id int) (*dto.Recipe, error) {
	query := url.Values{}
	query.Set("apiKey", s.apiKey)
	query.Set("includeNutrition", "true")

	var info recipeInformation
	if err := s.getJSON(ctx, fmt.Sprintf("/recipes/%d/information", id), query, &info); err != nil {
		return nil, err
	}

	recipe := &dto.Recipe{
		ID:             info.ID,
		Title:          info.Title,
		Image:          info.Image,
		ReadyInMinutes: info.ReadyInMinutes,
		Servings:       info.Servings,
		SourceURL:      info.SourceURL,
		Instructions:   info.Instructions,
		Ingredients:    make([]dto.Ingredient, 0, len(info.ExtendedIngredients)),
		Nutrients:      make([]dto.Nutrient, 0, len(info.Nutrition.Nutrients)),
	}
	for _, ing := range info.ExtendedIngredients {
		recipe.Ingredients = append(recipe.Ingredients, dto.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit})
	}
	for _, n := range info.Nutrition.Nutrients {
		recipe.Nutrients = append(recipe.Nutrients, dto.Nutrient{Name: n.Name, Amount: n.Amount, Unit: n.Unit})
	}
	return recipe, nil
}

func (s *RecipeService) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
