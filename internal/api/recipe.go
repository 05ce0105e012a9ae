package api

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/service"
	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

const (
	msgSubmitted      = "Recipe submitted successfully!"
	msgInvalidListing = "Invalid pagination parameters"
	msgInvalidID      = "Invalid recipe id"
	msgNotFound       = "Recipe not found"
	msgFetchFailed    = "Failed to fetch recipe"
)

type RecipeHandler struct {
	query        service.IRecipeQueryService
	submit       service.IRecipeSubmissionService
	redirectPath string
}

func NewRecipeHandler(query service.IRecipeQueryService, submit service.IRecipeSubmissionService, cfg *config.Config) *RecipeHandler {
	redirectPath := "/submit.html"
	if cfg != nil && cfg.SubmitRedirectPath != "" {
		redirectPath = cfg.SubmitRedirectPath
	}
	return &RecipeHandler{
		query:        query,
		submit:       submit,
		redirectPath: redirectPath,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.SubmitRecipe)
		recipes.GET("/submit", h.SubmitForm)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes serves one filtered, paginated page of recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var req types.ListRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: msgInvalidListing})
		return
	}

	result, err := h.query.List(c.Request.Context(), service.ListParams{
		Search:   req.Search,
		Category: req.Category,
		Limit:    atoiOrZero(req.Limit),
		Offset:   atoiOrZero(req.Offset),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: msgInvalidListing})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: service.ErrQueryFailure.Error()})
		return
	}

	c.JSON(http.StatusOK, types.ListRecipesResponse{
		Success:     true,
		Recipes:     result.Recipes,
		TotalCount:  result.TotalCount,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: msgInvalidID})
		return
	}

	recipe, err := h.query.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: msgNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: msgFetchFailed})
		return
	}

	c.JSON(http.StatusOK, types.RecipeResponse{Success: true, Recipe: recipe})
}

// submissionOutcome is decided once per request and then rendered either
// as JSON or as a redirect.
type submissionOutcome struct {
	status   int
	message  string
	recipeID uint
}

func (o submissionOutcome) ok() bool {
	return o.status < http.StatusBadRequest
}

// SubmitRecipe accepts a multipart or urlencoded recipe form
func (h *RecipeHandler) SubmitRecipe(c *gin.Context) {
	outcome := h.submitOutcome(c)

	if wantsJSON(c.Request) {
		c.JSON(outcome.status, types.SubmitRecipeResponse{
			Success:  outcome.ok(),
			Message:  outcome.message,
			RecipeID: outcome.recipeID,
		})
		return
	}

	target := h.redirectPath + "?success=1"
	if !outcome.ok() {
		target = h.redirectPath + "?error=" + url.QueryEscape(outcome.message)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// SubmitForm sends plain visits of the submission endpoint back to the form
func (h *RecipeHandler) SubmitForm(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, h.redirectPath)
}

func (h *RecipeHandler) submitOutcome(c *gin.Context) submissionOutcome {
	recipe, err := h.submit.Submit(c.Request.Context(), readSubmission(c))
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return submissionOutcome{status: http.StatusBadRequest, message: verr.Message}
		}
		log.Printf("[RecipeHandler] submission failed: %v", err)
		return submissionOutcome{status: http.StatusInternalServerError, message: service.ErrPersistFailure.Error()}
	}
	return submissionOutcome{status: http.StatusCreated, message: msgSubmitted, recipeID: recipe.ID}
}

func readSubmission(c *gin.Context) *types.RecipeSubmission {
	req := &types.RecipeSubmission{
		Name:            c.PostForm("recipe_name"),
		Description:     c.PostForm("description"),
		Category:        c.PostForm("category"),
		PrepTime:        c.PostForm("prep_time"),
		CookTime:        c.PostForm("cook_time"),
		Servings:        c.PostForm("servings"),
		Difficulty:      c.PostForm("difficulty"),
		CulturalContext: c.PostForm("cultural_context"),
		Ingredients:     formList(c, "ingredients"),
		Instructions:    formList(c, "instructions"),
		ImageURL:        c.PostForm("image_url"),
	}
	// urlencoded bodies have no files; that is not an error
	if fh, err := c.FormFile("recipe_image"); err == nil {
		req.Image = fileUpload(fh)
	}
	return req
}

// formList reads a repeated field, preferring the PHP-style "name[]" key
func formList(c *gin.Context, name string) []string {
	if values := c.PostFormArray(name + "[]"); len(values) > 0 {
		return values
	}
	return c.PostFormArray(name)
}

func fileUpload(fh *multipart.FileHeader) *types.ImageUpload {
	return &types.ImageUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// atoiOrZero coerces non-numeric query values to 0
func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
