package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Environment the configuration was loaded for
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// HTTP boundary
	CORSOrigins        []string
	SubmitRedirectPath string
	MaxListLimit       int

	// Tracing
	OTelEnabled bool
	OTelStdout  bool
}

// Supported values for DB_DRIVER
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var defaults = map[string]interface{}{
	"SERVER_HOST":          "0.0.0.0",
	"SERVER_PORT":          "8080",
	"DB_DRIVER":            DriverPostgres,
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_NAME":              "taste_namibia",
	"DB_SSL_MODE":          "disable",
	"DB_PATH":              "recipes.db",
	"CORS_ORIGINS":         "*",
	"SUBMIT_REDIRECT_PATH": "/submit.html",
	"MAX_LIST_LIMIT":       100,
	"OTEL_ENABLED":         false,
	"OTEL_STDOUT":          false,
}

// LoadConfig resolves configuration from defaults, an optional CONFIG_FILE,
// environment variables and, outside CI, Docker secrets.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := fromViper(v)
	cfg.Env = env

	// Sensitive values come from secrets files everywhere except CI
	switch env {
	case CI:
		if cfg.DBPassword == "" {
			cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
		}
	case Development, Test, Production:
		applySecrets(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return v, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerHost:         v.GetString("SERVER_HOST"),
		ServerPort:         v.GetString("SERVER_PORT"),
		DBDriver:           strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSL_MODE"),
		DBPath:             v.GetString("DB_PATH"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		SubmitRedirectPath: v.GetString("SUBMIT_REDIRECT_PATH"),
		MaxListLimit:       v.GetInt("MAX_LIST_LIMIT"),
		OTelEnabled:        v.GetBool("OTEL_ENABLED"),
		OTelStdout:         v.GetBool("OTEL_STDOUT"),
	}
}

// applySecrets overlays Docker secrets on top of the resolved values.
// Missing secret files leave the current value untouched.
func applySecrets(cfg *Config) {
	overlay := map[string]*string{
		"db_user":     &cfg.DBUser,
		"db_password": &cfg.DBPassword,
		"db_host":     &cfg.DBHost,
		"db_port":     &cfg.DBPort,
		"db_name":     &cfg.DBName,
	}
	for name, target := range overlay {
		if value := readSecret(name); value != "" {
			*target = value
		}
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}
