package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	Data     DataConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// DataConfig selects where trip records come from and how runs behave.
type DataConfig struct {
	Source             string
	Dir                string
	CitiesFile         string
	PageSize           int
	ExcludeFinalRecord bool
	Cities             Catalog
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Path     string // sqlite file
}

type LoggingConfig struct {
	Level      string
	FilePath   string
	Console    bool
	DiscordURL string
	MaxAge     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Source:             strings.ToLower(getEnv("BIKESHARE_SOURCE", SourceCSV)),
			Dir:                getEnv("BIKESHARE_DATA_DIR", "."),
			CitiesFile:         getEnv("BIKESHARE_CITIES_FILE", ""),
			PageSize:           getIntEnv("BIKESHARE_PAGE_SIZE", 5),
			ExcludeFinalRecord: getBoolEnv("BIKESHARE_EXCLUDE_FINAL_RECORD", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "bikeshare"),
			Path:     getEnv("DB_PATH", "bikeshare.db"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "warn"),
			FilePath:   getEnv("LOG_FILE", "bikeshare.log"),
			Console:    getBoolEnv("LOG_CONSOLE", false),
			DiscordURL: getEnv("DISCORD_WEBHOOK_URL", ""),
			MaxAge:     getDurationEnv("LOG_MAX_AGE", 30*24*time.Hour),
		},
	}

	switch cfg.Data.Source {
	case SourceCSV:
	case SourcePostgres, SourceSQLite:
		cfg.Database.Driver = cfg.Data.Source
	default:
		return nil, fmt.Errorf("unknown BIKESHARE_SOURCE %q", cfg.Data.Source)
	}

	if cfg.Data.PageSize <= 0 {
		return nil, fmt.Errorf("BIKESHARE_PAGE_SIZE must be positive, got %d", cfg.Data.PageSize)
	}

	cities := DefaultCatalog()
	if cfg.Data.CitiesFile != "" {
		loaded, err := LoadCatalog(cfg.Data.CitiesFile)
		if err != nil {
			return nil, err
		}
		cities = loaded
	}
	cfg.Data.Cities = cities

	return cfg, nil
}

func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case SourcePostgres:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("postgres source requires DB_HOST and DB_NAME")
		}
	case SourceSQLite:
		if c.Path == "" {
			return fmt.Errorf("sqlite source requires DB_PATH")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	return nil
}

// ConnectionString returns the DSN for the configured driver.
func (c *DatabaseConfig) ConnectionString() string {
	if c.Driver == SourceSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
