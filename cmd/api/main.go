package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/database"
	"github.com/tastenamibia/recipe-catalog/backend/internal/server"
	"github.com/tastenamibia/recipe-catalog/backend/internal/telemetry"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Starting recipe catalog API (%s)", cfg.Env)

	shutdownTracing, err := telemetry.Init(context.Background(), cfg, "recipe-catalog-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// The catalog cannot serve anything without its store
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	srv := server.New(cfg, db)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := shutdownTracing(context.Background()); err != nil {
		log.Printf("Tracing shutdown error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}
