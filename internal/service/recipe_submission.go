package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
	"github.com/tastenamibia/recipe-catalog/backend/internal/telemetry"
	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

// Defaults applied to optional submission fields
const (
	DefaultPrepTime   = 0
	DefaultCookTime   = 0
	DefaultServings   = 1
	DefaultDifficulty = "Easy"
)

// RecipeSubmissionService validates and stores new recipes
type RecipeSubmissionService struct {
	db *gorm.DB
}

// NewRecipeSubmissionService creates a new RecipeSubmissionService instance
func NewRecipeSubmissionService(db *gorm.DB) *RecipeSubmissionService {
	return &RecipeSubmissionService{db: db}
}

// Submit validates req and inserts it as a single row. Validation failures
// are *ValidationError values and leave the store untouched; insert
// failures wrap ErrPersistFailure.
func (s *RecipeSubmissionService) Submit(ctx context.Context, req *types.RecipeSubmission) (*model.Recipe, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "recipes.submit")
	defer span.End()

	recipe, err := Prepare(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		log.Printf("[RecipeSubmissionService] failed to insert recipe %q: %v", recipe.Name, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrPersistFailure, err)
	}

	span.SetAttributes(attribute.Int64("recipes.id", int64(recipe.ID)))
	log.Printf("[RecipeSubmissionService] created recipe %d (%s)", recipe.ID, recipe.Name)
	return recipe, nil
}

// Prepare runs the submission checks in order and maps req onto an unsaved
// Recipe. The first failing check decides the returned error.
func Prepare(req *types.RecipeSubmission) (*model.Recipe, error) {
	required := []struct {
		field string
		value string
	}{
		{"recipe_name", req.Name},
		{"description", req.Description},
		{"category", req.Category},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, missingField(r.field)
		}
	}

	if len(req.Ingredients) == 0 {
		return nil, missingIngredients()
	}
	if len(req.Instructions) == 0 {
		return nil, missingInstructions()
	}

	ingredients := cleanLines(req.Ingredients)
	if len(ingredients) == 0 {
		return nil, missingIngredients()
	}
	instructions := cleanLines(req.Instructions)
	if len(instructions) == 0 {
		return nil, missingInstructions()
	}

	recipe := &model.Recipe{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Category:        strings.TrimSpace(req.Category),
		PrepTime:        intOrDefault(req.PrepTime, DefaultPrepTime),
		CookTime:        intOrDefault(req.CookTime, DefaultCookTime),
		Servings:        intOrDefault(req.Servings, DefaultServings),
		Difficulty:      strings.TrimSpace(req.Difficulty),
		CulturalContext: strings.TrimSpace(req.CulturalContext),
		Ingredients:     ingredients,
		Instructions:    instructions,
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = DefaultDifficulty
	}

	// An upload wins over a URL; at most one image field is ever set
	switch {
	case req.Image != nil && strings.TrimSpace(req.Image.Filename) != "":
		data, err := encodeImage(req.Image)
		if err != nil {
			return nil, err
		}
		recipe.ImageData = data
	case strings.TrimSpace(req.ImageURL) != "":
		imageURL := strings.TrimSpace(req.ImageURL)
		if !validImageURL(imageURL) {
			return nil, newValidationError(InvalidImageURL, "image_url", "Invalid image URL")
		}
		recipe.ImageURL = imageURL
	}

	return recipe, nil
}

func missingIngredients() *ValidationError {
	return newValidationError(MissingIngredients, "ingredients", "At least one ingredient is required")
}

func missingInstructions() *ValidationError {
	return newValidationError(MissingInstructions, "instructions", "At least one instruction is required")
}

// cleanLines trims every line and drops blanks, keeping order
func cleanLines(lines []string) model.StringList {
	out := make(model.StringList, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// intOrDefault parses a non-negative integer, falling back to def
func intOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return def
	}
	return n
}
