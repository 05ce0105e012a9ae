package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/tastenamibia/recipe-catalog/backend/config"
	"github.com/tastenamibia/recipe-catalog/backend/internal/database"
	"github.com/tastenamibia/recipe-catalog/backend/internal/model"
)

// SetupTestDatabase returns a migrated in-memory sqlite store
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.New(&config.Config{
		Env:      config.Test,
		DBDriver: config.DriverSQLite,
		DBPath:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SetupPostgresDatabase creates a migrated store inside a PostgreSQL container
func SetupPostgresDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	const (
		user     = "postgres"
		password = "postpass"
		dbName   = "taste_namibia"
	)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						user, password, host, port.Port(), dbName)
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := database.New(&config.Config{
		Env:        config.Test,
		DBDriver:   config.DriverPostgres,
		DBHost:     host,
		DBPort:     mappedPort.Port(),
		DBUser:     user,
		DBPassword: password,
		DBName:     dbName,
		DBSSLMode:  "disable",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// SeedRecipes inserts recipes as-is, keeping any CreatedAt already set
func SeedRecipes(t *testing.T, db *gorm.DB, recipes ...*model.Recipe) {
	t.Helper()
	for _, r := range recipes {
		require.NoError(t, db.Create(r).Error)
	}
}

// CountRecipes returns the number of stored recipes
func CountRecipes(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&n).Error)
	return n
}

// NewRecipe builds a valid recipe fixture created at the given time
func NewRecipe(name, category string, createdAt time.Time, ingredients ...string) *model.Recipe {
	if len(ingredients) == 0 {
		ingredients = []string{"water"}
	}
	return &model.Recipe{
		Name:         name,
		Description:  name + " from the north",
		Category:     category,
		Servings:     1,
		Difficulty:   "Easy",
		Ingredients:  ingredients,
		Instructions: model.StringList{"cook"},
		CreatedAt:    createdAt,
	}
}
