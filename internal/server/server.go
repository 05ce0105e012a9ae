package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/api"
	"github.com/tastenamibia/recipe-catalog/backend/internal/middleware"
	"github.com/tastenamibia/recipe-catalog/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	cfg    *config.Config
}

// New creates a new server instance with every route registered
func New(cfg *config.Config, db *gorm.DB) *Server {
	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// uploads above the image cap are rejected anyway; keep a little headroom for the other fields
	router.MaxMultipartMemory = service.MaxImageSize + 1<<20
	router.Use(
		middleware.RequestID(),
		gin.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
	)

	api.RegisterRoutes(router, db, cfg)

	return &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
