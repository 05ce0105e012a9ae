package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/database"
	"github.com/tastenamibia/recipe-catalog/backend/internal/service"
)

// HealthCheck reports whether the API and its store are reachable
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			log.Printf("[HealthCheck] database unreachable: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"message":  "Recipe catalog API is running",
			"database": "ok",
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.GET("/health", HealthCheck(db))
	router.GET("/api/health", HealthCheck(db))

	recipeHandler := NewRecipeHandler(
		service.NewRecipeQueryService(db, cfg.MaxListLimit),
		service.NewRecipeSubmissionService(db),
		cfg,
	)

	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)
}
