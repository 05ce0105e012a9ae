package types

import "github.com/tastenamibia/recipe-catalog/backend/internal/model"

// ListRecipesResponse is the listing endpoint's success body
type ListRecipesResponse struct {
	Success     bool           `json:"success"`
	Recipes     []model.Recipe `json:"recipes"`
	TotalCount  int64          `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
}

// RecipeResponse wraps a single recipe
type RecipeResponse struct {
	Success bool          `json:"success"`
	Recipe  *model.Recipe `json:"recipe"`
}

// ErrorResponse is the failure body of read endpoints
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SubmitRecipeResponse is the JSON-mode body of the submission endpoint
type SubmitRecipeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RecipeID uint   `json:"recipe_id,omitempty"`
}
