package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// networked drivers need a host to talk to
var networkedDrivers = map[string]bool{
	DriverPostgres: true,
	DriverMySQL:    true,
}

// ValidateConfig checks if the configuration is usable for cfg.Env
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	switch {
	case networkedDrivers[cfg.DBDriver]:
		required := map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		}
		for _, field := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"} {
			if strings.TrimSpace(required[field]) == "" {
				errs = append(errs, ValidationError{field, "is required"})
			}
		}
		if cfg.DBPassword == "" && (cfg.Env == Production || cfg.Env == CI) {
			errs = append(errs, ValidationError{"DB_PASSWORD", "db_password secret is required"})
		}
	case cfg.DBDriver == DriverSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			errs = append(errs, ValidationError{"DB_PATH", "is required for sqlite"})
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.MaxListLimit <= 0 {
		errs = append(errs, ValidationError{"MAX_LIST_LIMIT", "must be positive"})
	}
	if strings.TrimSpace(cfg.SubmitRedirectPath) == "" {
		errs = append(errs, ValidationError{"SUBMIT_REDIRECT_PATH", "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
