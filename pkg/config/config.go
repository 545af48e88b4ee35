package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Model    ModelConfig
	History  HistoryConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type ModelConfig struct {
	Path        string
	MarginFloor float64
}

type HistoryConfig struct {
	Store string // memory | postgres
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type LogConfig struct {
	Level       string
	Format      string
	FileEnabled bool
	FilePath    string
}

const (
	HistoryStoreMemory   = "memory"
	HistoryStorePostgres = "postgres"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	marginFloor, err := strconv.ParseFloat(getEnv("MARGIN_FLOOR", "0.20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid margin floor: %w", err)
	}
	if math.IsNaN(marginFloor) || marginFloor < 0 || marginFloor > 1 {
		return nil, errors.New("margin floor must be between 0 and 1")
	}

	fileEnabled, err := strconv.ParseBool(getEnv("LOG_FILE_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_FILE_ENABLED: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Quote Optimiser"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Model: ModelConfig{
			Path:        getEnv("MODEL_PATH", "model.json"),
			MarginFloor: marginFloor,
		},
		History: HistoryConfig{
			Store: strings.ToLower(getEnv("HISTORY_STORE", HistoryStoreMemory)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "quote_optimiser"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", ""),
			Format:      getEnv("LOG_FORMAT", ""),
			FileEnabled: fileEnabled,
			FilePath:    getEnv("LOG_FILE_PATH", "logs"),
		},
	}

	switch cfg.History.Store {
	case HistoryStoreMemory:
	case HistoryStorePostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown history store %q", cfg.History.Store)
	}

	if cfg.Model.Path == "" {
		return nil, errors.New("missing model path")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
