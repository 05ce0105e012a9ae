package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
	"github.com/tastenamibia/recipe-catalog/backend/internal/service"
	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

type seedFileContents struct {
	Recipes []seedRecipe `yaml:"recipes"`
}

// seedRecipe is one entry of the seed file. Numeric fields are optional.
type seedRecipe struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Category        string   `yaml:"category"`
	PrepTime        *int     `yaml:"prep_time"`
	CookTime        *int     `yaml:"cook_time"`
	Servings        *int     `yaml:"servings"`
	Difficulty      string   `yaml:"difficulty"`
	CulturalContext string   `yaml:"cultural_context"`
	Ingredients     []string `yaml:"ingredients"`
	Instructions    []string `yaml:"instructions"`
	ImageURL        string   `yaml:"image_url"`
}

func loadSeedFile(path string) ([]seedRecipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var contents seedFileContents
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(contents.Recipes) == 0 {
		return nil, fmt.Errorf("seed file %s has no recipes", path)
	}
	return contents.Recipes, nil
}

func (r seedRecipe) submission() *types.RecipeSubmission {
	return &types.RecipeSubmission{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		PrepTime:        optionalInt(r.PrepTime),
		CookTime:        optionalInt(r.CookTime),
		Servings:        optionalInt(r.Servings),
		Difficulty:      r.Difficulty,
		CulturalContext: r.CulturalContext,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		ImageURL:        r.ImageURL,
	}
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

type rejection struct {
	name   string
	reason string
}

type seedReport struct {
	created  int
	rejected []rejection
}

// seed submits recipes in file order. Validation failures are collected;
// anything else aborts the run.
func seed(ctx context.Context, submitter service.IRecipeSubmissionService, recipes []seedRecipe, stopOnError bool) (seedReport, error) {
	var report seedReport
	for i, r := range recipes {
		if _, err := submitter.Submit(ctx, r.submission()); err != nil {
			var verr *service.ValidationError
			if !errors.As(err, &verr) {
				return report, fmt.Errorf("recipe %d (%s): %w", i+1, r.Name, err)
			}
			report.rejected = append(report.rejected, rejection{name: fmt.Sprintf("#%d %s", i+1, r.Name), reason: verr.Message})
			if stopOnError {
				return report, fmt.Errorf("recipe %d (%s) rejected: %w", i+1, r.Name, err)
			}
			continue
		}
		report.created++
	}
	return report, nil
}

// dryRunSubmitter validates without touching a database
type dryRunSubmitter struct{}

func (dryRunSubmitter) Submit(_ context.Context, req *types.RecipeSubmission) (*model.Recipe, error) {
	return service.Prepare(req)
}
