package types

import "io"

// ListRecipesRequest carries the listing query parameters. Limit and Offset
// are kept as raw strings so non-numeric input can be coerced instead of
// rejected by binding.
type ListRecipesRequest struct {
	Search   string `form:"search"`
	Category string `form:"category,default=all"`
	Limit    string `form:"limit,default=50"`
	Offset   string `form:"offset,default=0"`
}

// ImageUpload is an uploaded image file. Open may be called more than once.
type ImageUpload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// RecipeSubmission is the typed form payload of a new recipe. Numeric
// fields stay raw; the submission service applies the defaults.
type RecipeSubmission struct {
	Name            string
	Description     string
	Category        string
	PrepTime        string
	CookTime        string
	Servings        string
	Difficulty      string
	CulturalContext string
	Ingredients     []string
	Instructions    []string
	Image           *ImageUpload
	ImageURL        string
}
