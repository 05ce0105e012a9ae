package service

import (
	"context"

	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

// IRecipeQueryService defines the interface for recipe reads
type IRecipeQueryService interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id uint) (*model.Recipe, error)
}

// IRecipeSubmissionService defines the interface for recipe creation
type IRecipeSubmissionService interface {
	Submit(ctx context.Context, req *types.RecipeSubmission) (*model.Recipe, error)
}

var (
	_ IRecipeQueryService      = (*RecipeQueryService)(nil)
	_ IRecipeSubmissionService = (*RecipeSubmissionService)(nil)
)
