package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/auth"
	"github.com/hometrack/hometrack-api/internal/constants"
	"github.com/hometrack/hometrack-api/internal/middleware"
	"github.com/hometrack/hometrack-api/internal/repository"
	"github.com/hometrack/hometrack-api/internal/services"
	"github.com/hometrack/hometrack-api/internal/validation"
)

// RouterConfig holds the dependencies of the HTTP API.
type RouterConfig struct {
	Store   *repository.Store
	Tokens  *auth.TokenManager
	Recipes *services.RecipeService
	AI      *services.AIService
	Metrics *middleware.Metrics
	Logger  *slog.Logger

	CORSAllowedOrigins []string
	// Clock overrides the time source of the resource services.
	Clock func() time.Time
}

// NewRouter builds the gin engine serving the whole API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	validation.Setup()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	var opts []services.ResourceOption
	if cfg.Clock != nil {
		opts = append(opts, services.WithClock(cfg.Clock))
	}

	authService := services.NewAuthService(cfg.Store.Users, cfg.Tokens)
	authHandler := NewAuthHandler(authService, logger)
	recipeHandler := NewRecipeHandler(cfg.Recipes, logger)
	suggestHandler := NewTaskSuggestHandler(cfg.AI, logger)
	requireAuth := middleware.RequireAuth(cfg.Tokens)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Home Track API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	user := r.Group("/user")
	{
		user.POST("/register", authHandler.Register)
		user.POST("/login", authHandler.Login)
		user.GET("/me", requireAuth, authHandler.GetCurrentUser)
	}

	inventory := r.Group("/inventory", requireAuth)
	{
		NewResourceHandler(services.NewResourceService(services.FoodDefinition, cfg.Store.Food, opts...), logger).
			Register(inventory.Group("/food-beverages"))
		NewResourceHandler(services.NewResourceService(services.CleaningDefinition, cfg.Store.Cleaning, opts...), logger).
			Register(inventory.Group("/cleaning-supplies"))
		NewResourceHandler(services.NewResourceService(services.PersonalCareDefinition, cfg.Store.PersonalCare, opts...), logger).
			Register(inventory.Group("/personal-care"))
		NewResourceHandler(services.NewResourceService(services.HouseholdDefinition, cfg.Store.Household, opts...), logger).
			Register(inventory.Group("/household-items"))
		NewResourceHandler(services.NewResourceService(services.ToolsDefinition, cfg.Store.Tools, opts...), logger).
			Register(inventory.Group("/tools-maintenance"))
	}

	tasks := r.Group("/task", requireAuth)
	tasks.POST("/suggest", suggestHandler.SuggestTasks)
	NewResourceHandler(services.NewResourceService(services.TaskDefinition, cfg.Store.Tasks, opts...), logger).
		Register(tasks)

	NewResourceHandler(services.NewResourceService(services.ExpenseDefinition, cfg.Store.Expenses, opts...), logger).
		Register(r.Group("/expenses", requireAuth))

	NewResourceHandler(services.NewResourceService(services.ShoppingListDefinition, cfg.Store.ShoppingList, opts...), logger).
		Register(r.Group("/shoppingList", requireAuth))

	recipes := r.Group("/recipes", requireAuth)
	recipes.POST("/generate-recipe", recipeHandler.GenerateRecipe)

	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", constants.HeaderRequestID},
		ExposeHeaders:    []string{constants.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}
