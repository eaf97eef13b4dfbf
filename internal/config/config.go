package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// Store kinds selectable through RENTAL_STORE
const (
	StoreFile = "file"
	StoreSQL  = "sql"
)

// FileConfig locates the flat-file resources
type FileConfig struct {
	DataDir        string
	HousesFile     string
	TenantsFile    string
	AgreementsFile string
}

// DBConfig holds the relational store settings
type DBConfig struct {
	URL      string
	LogLevel logger.LogLevel
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string
	Environment string
}

// Config holds all configuration
type Config struct {
	Store string
	Files FileConfig
	DB    DBConfig
	Log   LogConfig
}

// Load reads the optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Store: getEnv("RENTAL_STORE", StoreFile),
		Files: FileConfig{
			DataDir:        getEnv("RENTAL_DATA_DIR", "."),
			HousesFile:     getEnv("RENTAL_HOUSES_FILE", "houses.txt"),
			TenantsFile:    getEnv("RENTAL_TENANTS_FILE", "tenants.txt"),
			AgreementsFile: getEnv("RENTAL_AGREEMENTS_FILE", "agreements.txt"),
		},
		DB: DBConfig{
			URL:      getEnv("DATABASE_URL", "rental.db"),
			LogLevel: getEnvAsLogLevel("DB_LOG_LEVEL", logger.Silent),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "warn"),
			Environment: getEnv("APP_ENV", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects an unknown store kind.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQL:
		return nil
	default:
		return fmt.Errorf("unknown RENTAL_STORE %q (want %q or %q)", c.Store, StoreFile, StoreSQL)
	}
}

// Fields returns the configuration as zap fields, without the database URL.
func (c *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.String("store", c.Store),
		zap.String("data_dir", c.Files.DataDir),
		zap.String("environment", c.Log.Environment),
		zap.String("log_level", c.Log.Level),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch getEnv(key, "") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
