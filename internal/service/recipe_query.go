package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
	"github.com/tastenamibia/recipe-catalog/backend/internal/telemetry"
)

const (
	// DefaultListLimit is the page size used when the caller sends none
	DefaultListLimit = 50
	// MaxListLimit caps the page size when no other cap is configured
	MaxListLimit = 100
	// AllCategories is the category sentinel meaning "no filter"
	AllCategories = "all"
)

// ESCAPE character for LIKE patterns; accepted by postgres, mysql and sqlite alike
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// ListParams are the explicit filters of one listing request
type ListParams struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

// ListResult is one page of recipes plus pagination metadata
type ListResult struct {
	Recipes     []model.Recipe
	TotalCount  int64
	CurrentPage int
	TotalPages  int
}

// RecipeQueryService handles recipe reads
type RecipeQueryService struct {
	db       *gorm.DB
	maxLimit int
}

// NewRecipeQueryService creates a new RecipeQueryService instance.
// A non-positive maxLimit falls back to MaxListLimit.
func NewRecipeQueryService(db *gorm.DB, maxLimit int) *RecipeQueryService {
	if maxLimit <= 0 {
		maxLimit = MaxListLimit
	}
	return &RecipeQueryService{
		db:       db,
		maxLimit: maxLimit,
	}
}

// List returns the requested page of recipes matching params, newest first.
//
// Limit must be positive and Offset non-negative; anything else fails with
// ErrInvalidArgument before the store is queried. Limits above the
// configured maximum are clamped and the clamped value drives the
// pagination math.
func (s *RecipeQueryService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "recipes.list")
	defer span.End()

	if params.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer, got %d", ErrInvalidArgument, params.Limit)
	}
	if params.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidArgument, params.Offset)
	}

	limit := params.Limit
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	span.SetAttributes(
		attribute.String("recipes.search", params.Search),
		attribute.String("recipes.category", params.Category),
		attribute.Int("recipes.limit", limit),
		attribute.Int("recipes.offset", params.Offset),
	)

	recipes := []model.Recipe{}
	err := s.filtered(ctx, params).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(params.Offset).
		Find(&recipes).Error
	if err != nil {
		log.Printf("[RecipeQueryService] failed to list recipes: %v", err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrQueryFailure, err)
	}

	// Same predicate, no paging: metadata describes the filtered set
	var total int64
	if err := s.filtered(ctx, params).Count(&total).Error; err != nil {
		log.Printf("[RecipeQueryService] failed to count recipes: %v", err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrQueryFailure, err)
	}

	return &ListResult{
		Recipes:     recipes,
		TotalCount:  total,
		CurrentPage: params.Offset/limit + 1,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Get retrieves a recipe by ID
func (s *RecipeQueryService) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "recipes.get")
	defer span.End()

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		log.Printf("[RecipeQueryService] failed to get recipe %d: %v", id, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrQueryFailure, err)
	}
	return &recipe, nil
}

// filtered builds a fresh query carrying only the search/category predicate
func (s *RecipeQueryService) filtered(ctx context.Context, params ListParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	// ingredients is matched in its serialized form, brackets and quotes included
	if search := strings.TrimSpace(params.Search); search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(
			"(LOWER(name) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(description) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(ingredients) LIKE ? ESCAPE '"+likeEscape+"')",
			like, like, like,
		)
	}

	if category := strings.TrimSpace(params.Category); category != "" && category != AllCategories {
		query = query.Where("category = ?", category)
	}

	return query
}
