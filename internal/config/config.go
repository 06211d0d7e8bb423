package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	GuildID        string
	DatabaseURL    string
	DefaultLocale  string
	MigrationsPath string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional: the variables may come from the environment itself
	// (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	// GUILD_ID is optional: empty means the commands are registered globally.
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/charbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en-US"
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	return nil
}
