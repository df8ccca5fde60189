package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/auth"
	"github.com/hometrack/hometrack-api/internal/repository"
	"github.com/hometrack/hometrack-api/internal/services"
	"github.com/hometrack/hometrack-api/internal/testutil"
	"github.com/hometrack/hometrack-api/pkg/logging"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	store  *repository.Store
	tokens *auth.TokenManager
	now    time.Time
}

type envOption func(*RouterConfig)

func withRecipes(svc *services.RecipeService) envOption {
	return func(cfg *RouterConfig) { cfg.Recipes = svc }
}

func withAI(svc *services.AIService) envOption {
	return func(cfg *RouterConfig) { cfg.AI = svc }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		t:      t,
		store:  repository.NewGormStore(testutil.NewDB(t)),
		tokens: auth.NewTokenManager("test-secret", 24*time.Hour),
		now:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	cfg := RouterConfig{
		Store:   env.store,
		Tokens:  env.tokens,
		Recipes: services.NewRecipeService(services.RecipeConfig{Logger: logging.Discard()}),
		AI:      services.NewAIService(services.AIConfig{}),
		Logger:  logging.Discard(),
		Clock:   func() time.Time { return env.now },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	env.router = NewRouter(cfg)
	return env
}

func (e *testEnv) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

func (e *testEnv) tokenFor(userID string) string {
	token, err := e.tokens.Generate(userID)
	require.NoError(e.t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(e.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

