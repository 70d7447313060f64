package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DatabaseConfigPath is where generated applications keep their per-env
// database connection settings.
const DatabaseConfigPath = "config/database.yml"

// DatabaseEnv is one environment section of config/database.yml.
type DatabaseEnv struct {
	URL string `yaml:"url"`
}

// DatabaseConfig maps environment names (development, test, production)
// to their connection settings.
type DatabaseConfig struct {
	Environments map[string]DatabaseEnv
}

// LoadDatabaseConfig reads and parses a database.yml file.
func LoadDatabaseConfig(path string) (*DatabaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseDatabaseConfig(data)
}

// ParseDatabaseConfig parses database.yml contents.
func ParseDatabaseConfig(data []byte) (*DatabaseConfig, error) {
	envs := map[string]DatabaseEnv{}
	if err := yaml.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	return &DatabaseConfig{Environments: envs}, nil
}

// URLFor returns the connection URL configured for env.
func (c *DatabaseConfig) URLFor(env string) (string, error) {
	entry, ok := c.Environments[env]
	if !ok {
		return "", fmt.Errorf("no database configuration for environment %q", env)
	}
	if entry.URL == "" {
		return "", fmt.Errorf("empty database url for environment %q", env)
	}
	return entry.URL, nil
}
