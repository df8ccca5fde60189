package constants

import "time"

// Context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
)

// Authentication
const (
	DefaultTokenTTL = 24 * time.Hour
	BearerPrefix    = "Bearer "
	HeaderRequestID = "X-Request-ID"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Derived inventory views
const (
	// NearExpiryWindow is how far ahead the close-to-expiry view looks.
	// Items that have already expired are always included.
	NearExpiryWindow = 72 * time.Hour
)

// Recipe suggestions
const (
	DefaultRecipeBaseURL     = "https://api.spoonacular.com"
	DefaultRecipeCuisine     = "Indian"
	RecipeResultCount        = 5
	RecipeDetailConcurrency  = 4
	DefaultHTTPClientTimeout = 15 * time.Second
)

// Task suggestions
const (
	MaxSuggestedTasks = 10
)
