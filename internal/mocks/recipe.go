package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
	"github.com/tastenamibia/recipe-catalog/backend/internal/service"
	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

// MockRecipeQueryService is a mock implementation of the recipe query service
type MockRecipeQueryService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockRecipeQueryService) List(ctx context.Context, params service.ListParams) (*service.ListResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

// Get mocks the Get method
func (m *MockRecipeQueryService) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// MockRecipeSubmissionService is a mock implementation of the submission service
type MockRecipeSubmissionService struct {
	mock.Mock
}

// Submit mocks the Submit method
func (m *MockRecipeSubmissionService) Submit(ctx context.Context, req *types.RecipeSubmission) (*model.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

var (
	_ service.IRecipeQueryService      = (*MockRecipeQueryService)(nil)
	_ service.IRecipeSubmissionService = (*MockRecipeSubmissionService)(nil)
)
