package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tallyhq/tally/internal/validation"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	// DatabaseFileName is the fixed storage file name under DataPath.
	DatabaseFileName = "tally.db"
)

type Config struct {
	DataPath string `json:"data_path" validate:"required"`
	Debug    bool   `json:"debug"`
	Env      string `json:"env" validate:"required,oneof=development production test"`
	HostName string `json:"hostname"`
	Port     string `json:"port" validate:"required,numeric"`
}

func env(key string, defaultValue string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}

	return defaultValue
}

func NewConfig() *Config {
	return &Config{
		DataPath: env("TALLY_DATA_PATH", "./data"),
		Debug:    env("TALLY_DEBUG", "false") == "true",
		Env:      env("TALLY_ENV", "production"),
		HostName: env("TALLY_HOSTNAME", "localhost"),
		Port:     env("TALLY_PORT", "8080"),
	}
}

// Return the path of the counter database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataPath, DatabaseFileName)
}

// Validate the configuration before the server starts serving.
func (c *Config) Validate() error {
	validationErrors := validation.Validate(c, map[string]string{
		"data_path.required": "The data path is required.",
		"env.required":       "The environment is required.",
		"env.oneof":          "The environment must be one of development, production or test.",
		"port.required":      "The port is required.",
		"port.numeric":       "The port must be a number.",
	})

	if validationErrors != nil {
		messages := []string{}

		for _, fieldMessages := range validationErrors {
			messages = append(messages, fieldMessages...)
		}

		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, " "))
	}

	port, err := strconv.Atoi(c.Port)

	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid configuration: the port must be between 1 and 65535")
	}

	return nil
}
