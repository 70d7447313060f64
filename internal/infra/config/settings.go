// Package config loads orbin application settings.
//
// Settings are resolved with the following priority: .env file in the
// working directory > process environment > built-in defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the resolved application settings.
type Settings struct {
	AppName string
	AppEnv  string // development, test, production
	Debug   bool

	DatabaseURL     string
	TestDatabaseURL string

	APIHost string
	APIPort int

	SecretKey string

	// Source records where the settings came from: "env" when a .env file
	// was found, "default" otherwise.
	Source string
}

// Load resolves settings for the current working directory.
// A missing .env file is not an error; defaults still apply.
func Load() Settings {
	source := "default"
	if err := godotenv.Load(".env"); err == nil {
		source = "env"
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	toInt := func(s string, def int) int {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return def
	}
	toBool := func(s string, def bool) bool {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return def
	}

	return Settings{
		AppName:         get("APP_NAME", "orbin"),
		AppEnv:          get("APP_ENV", "development"),
		Debug:           toBool(get("DEBUG", ""), true),
		DatabaseURL:     get("DATABASE_URL", ""),
		TestDatabaseURL: get("TEST_DATABASE_URL", ""),
		APIHost:         get("API_HOST", "0.0.0.0"),
		APIPort:         toInt(get("API_PORT", ""), 8000),
		SecretKey:       get("SECRET_KEY", "dev-secret-key"),
		Source:          source,
	}
}

// IsDevelopment reports whether the app runs in development mode.
func (s Settings) IsDevelopment() bool {
	return s.AppEnv == "development"
}

// IsTest reports whether the app runs in test mode.
func (s Settings) IsTest() bool {
	return s.AppEnv == "test"
}

// IsProduction reports whether the app runs in production mode.
func (s Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

// ResolveDatabaseURL returns the database URL for the current environment.
// An explicit DATABASE_URL (or TEST_DATABASE_URL in test mode) wins over
// config/database.yml.
func (s Settings) ResolveDatabaseURL() (string, error) {
	if s.IsTest() && s.TestDatabaseURL != "" {
		return s.TestDatabaseURL, nil
	}
	if s.DatabaseURL != "" {
		return s.DatabaseURL, nil
	}

	dbCfg, err := LoadDatabaseConfig(DatabaseConfigPath)
	if err != nil {
		return "", err
	}
	return dbCfg.URLFor(s.AppEnv)
}
