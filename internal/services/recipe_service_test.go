package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hometrack/hometrack-api/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeSpoonacular struct {
	failSearch  bool
	failDetails map[int]bool
	ids         []int

	lastSearch  atomic.Value
	detailCalls atomic.Int32
}

func (f *fakeSpoonacular) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("apiKey") != "test-key" {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	if r.URL.Path == "/recipes/complexSearch" {
		f.lastSearch.Store(r.URL.Query())
		if f.failSearch {
			http.Error(w, `{"message":"quota exceeded"}`, http.StatusPaymentRequired)
			return
		}
		results := make([]map[string]any, 0, len(f.ids))
		for _, id := range f.ids {
			results = append(results, map[string]any{"id": id, "title": fmt.Sprintf("Recipe %d", id)})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
		return
	}

	var id int
	if _, err := fmt.Sscanf(r.URL.Path, "/recipes/%d/information", &id); err != nil {
		http.NotFound(w, r)
		return
	}
	f.detailCalls.Add(1)
	if f.failDetails[id] || r.URL.Query().Get("includeNutrition") != "true" {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":             id,
		"title":          fmt.Sprintf("Recipe %d", id),
		"image":          "https://img.example.com/" + fmt.Sprint(id) + ".jpg",
		"readyInMinutes": 30,
		"servings":       2,
		"sourceUrl":      "https://example.com/recipes/" + fmt.Sprint(id),
		"instructions":   "Cook it.",
		"extendedIngredients": []map[string]any{
			{"name": "rice", "amount": 1.5, "unit": "cups"},
		},
		"nutrition": map[string]any{
			"nutrients": []map[string]any{
				{"name": "Calories", "amount": 420.0, "unit": "kcal"},
			},
		},
	})
}

func newRecipeService(t *testing.T, handler http.Handler) *RecipeService {
	t.Helper()
	srv := httptest.NewServer(handler)
	svc := NewRecipeService(RecipeConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Logger:  logging.Discard(),
	})
	t.Cleanup(func() {
		svc.client.CloseIdleConnections()
		srv.Close()
	})
	return svc
}

func TestRecipeService_Generate(t *testing.T) {
	fake := &fakeSpoonacular{ids: []int{11, 22, 33}}
	svc := newRecipeService(t, fake)

	recipes, err := svc.Generate(context.Background(), []string{"rice", "lentils"})
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	assert.Equal(t, []int{11, 22, 33}, []int{recipes[0].ID, recipes[1].ID, recipes[2].ID})
	assert.Equal(t, "rice", recipes[0].Ingredients[0].Name)
	assert.Equal(t, 1.5, recipes[0].Ingredients[0].Amount)
	assert.Equal(t, "Calories", recipes[0].Nutrients[0].Name)
	assert.Equal(t, 30, recipes[0].ReadyInMinutes)

	query := fake.lastSearch.Load().(url.Values)
	assert.Equal(t, "rice,lentils", query.Get("includeIngredients"))
	assert.Equal(t, "5", query.Get("number"))
	assert.Equal(t, "Indian", query.Get("cuisine"))
}

func TestRecipeService_DropsFailedDetails(t *testing.T) {
	fake := &fakeSpoonacular{ids: []int{1, 2, 3, 4, 5}, failDetails: map[int]bool{2: true, 4: true}}
	svc := newRecipeService(t, fake)

	recipes, err := svc.Generate(context.Background(), []string{"eggs"})
	require.NoError(t, err)

	ids := make([]int, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 3, 5}, ids)
	assert.EqualValues(t, 5, fake.detailCalls.Load(), "a failure does not cancel the other fetches")
}

func TestRecipeService_SearchFailure(t *testing.T) {
	svc := newRecipeService(t, &fakeSpoonacular{failSearch: true})

	_, err := svc.Generate(context.Background(), []string{"eggs"})
	require.ErrorIs(t, err, ErrRecipeSearchFailed)
	assert.True(t, strings.Contains(err.Error(), "402"))
}

func TestRecipeService_NotConfigured(t *testing.T) {
	svc := NewRecipeService(RecipeConfig{})
	assert.False(t, svc.Configured())

	_, err := svc.Generate(context.Background(), []string{"eggs"})
	assert.ErrorIs(t, err, ErrRecipeNotConfigured)
}

func TestRecipeService_CollectDetailsDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	fake := &fakeSpoonacular{ids: []int{1, 2, 3, 4, 5, 6, 7, 8}, failDetails: map[int]bool{3: true}}
	srv := httptest.NewServer(fake)
	svc := NewRecipeService(RecipeConfig{APIKey: "test-key", BaseURL: srv.URL, Logger: logging.Discard()})
	svc.client.Transport = &http.Transport{DisableKeepAlives: true}
	defer srv.Close()

	recipes := svc.collectDetails(context.Background(), fake.ids)
	assert.Len(t, recipes, 7)
}
