package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	// DefaultErgastBaseURL is the maintained mirror of the Ergast F1 API
	DefaultErgastBaseURL = "https://api.jolpi.ca/ergast/f1"

	// DefaultHTTPTimeout bounds a single request to the data provider
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultCommandTimeout bounds a whole command invocation. Discord keeps a
	// deferred interaction token valid for 15 minutes.
	DefaultCommandTimeout = 30 * time.Second

	// DefaultEnvFile is loaded when no env file is given
	DefaultEnvFile = ".env"
)

// Config holds the runtime configuration for the bot
type Config struct {
	// Discord bot token
	DiscordToken string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Base URL of the Ergast compatible standings API
	ErgastBaseURL string

	// Timeout for one request to the standings API
	HTTPTimeout time.Duration

	// Deadline for one command invocation
	CommandTimeout time.Duration

	// Whether replies include a rendered points chart
	ChartsEnabled bool

	// Log level
	LogLevel zap.AtomicLevel
}

// Load reads envFile (if it exists) into the process environment and builds a Config from it
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		ErgastBaseURL: strings.TrimRight(getEnv("ERGAST_BASE_URL", DefaultErgastBaseURL), "/"),
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", DefaultHTTPTimeout); err != nil {
		return nil, err
	}

	if cfg.CommandTimeout, err = getDuration("COMMAND_TIMEOUT", DefaultCommandTimeout); err != nil {
		return nil, err
	}

	if cfg.ChartsEnabled, err = getBool("CHARTS_ENABLED", true); err != nil {
		return nil, err
	}

	cfg.LogLevel, err = zap.ParseAtomicLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings needed to connect to Discord
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}

	if c.ErgastBaseURL == "" {
		return errors.New("ERGAST_BASE_URL cannot be empty")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}

	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return b, nil
}
