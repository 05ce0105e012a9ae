package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
	"github.com/tastenamibia/recipe-catalog/backend/internal/server"
	"github.com/tastenamibia/recipe-catalog/backend/internal/testhelpers"
	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

func setupServer(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()
	return server.New(&config.Config{
		Env:                config.Test,
		ServerPort:         "8080",
		CORSOrigins:        []string{"*"},
		SubmitRedirectPath: "/submit.html",
		MaxListLimit:       100,
	}, db).Handler()
}

func submit(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func list(t *testing.T, h http.Handler, query string) types.ListRecipesResponse {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes?"+query, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.ListRecipesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// runCatalogScenario exercises the public surface against whichever store db is
func runCatalogScenario(t *testing.T, db *gorm.DB) {
	h := setupServer(t, db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	testhelpers.SeedRecipes(t, db,
		testhelpers.NewRecipe("Oshifima", "staple", base, "maize meal", "water"),
		testhelpers.NewRecipe("Maize Porridge", "breakfast", base.Add(time.Minute)),
		testhelpers.NewRecipe("Kapana", "street-food", base.Add(2*time.Minute), "beef"),
		&model.Recipe{
			Name: "Vetkoek", Description: "fried dough with maize relish", Category: "snacks",
			Servings: 1, Difficulty: "Easy", Ingredients: model.StringList{"flour"}, Instructions: model.StringList{"fry"},
			CreatedAt: base.Add(3 * time.Minute),
		},
	)

	resp := list(t, h, "search=maize&category=all&limit=10&offset=0")
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Recipes, 3)
	assert.Equal(t, "Vetkoek", resp.Recipes[0].Name)

	w := submit(t, h, url.Values{
		"recipe_name":    {"Omajowa Soup"},
		"description":    {"Termite-hill mushrooms in cream"},
		"category":       {"seasonal"},
		"ingredients[]":  {"omajowa", "", "cream"},
		"instructions[]": {"fry", "simmer"},
		"image_url":      {"https://example.com/omajowa.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created types.SubmitRecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.RecipeID)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", created.RecipeID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, model.StringList{"omajowa", "cream"}, got.Recipe.Ingredients)
	assert.Equal(t, "https://example.com/omajowa.jpg", got.Recipe.ImageURL)
	assert.Empty(t, got.Recipe.ImageData)

	// newest first, so the fresh submission leads an unfiltered page
	resp = list(t, h, "limit=2")
	assert.Equal(t, int64(5), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "Omajowa Soup", resp.Recipes[0].Name)

	resp = list(t, h, "category=seasonal")
	assert.Equal(t, int64(1), resp.TotalCount)

	w = submit(t, h, url.Values{"recipe_name": {"Nameless"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(5), testhelpers.CountRecipes(t, db))
}

func TestCatalogSQLite(t *testing.T) {
	runCatalogScenario(t, testhelpers.SetupTestDatabase(t))
}

func TestCatalogPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	runCatalogScenario(t, testhelpers.SetupPostgresDatabase(t))
}
