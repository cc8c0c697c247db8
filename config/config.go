package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type StorageBackend string

const (
	BackendFile     StorageBackend = "file"
	BackendSQLite   StorageBackend = "sqlite"
	BackendPostgres StorageBackend = "postgres"
)

func (b StorageBackend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendPostgres:
		return true
	}
	return false
}

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Storage StorageConfig
	CMS     CMSConfig
	Logger  LoggerConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	Backend         StorageBackend
	FilePath        string
	SQLitePath      string
	DSN             string
	Host            string
	Port            int
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CMSConfig struct {
	BaseURL      string
	AccessToken  string
	RefreshToken string
	Timeout      time.Duration
}

type LoggerConfig struct {
	Level  string
	Pretty bool
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "rayan-admin"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Storage: StorageConfig{
			Backend:         StorageBackend(getEnv("STORAGE_BACKEND", string(BackendFile))),
			FilePath:        getEnv("STORAGE_FILE_PATH", "data/finance.json"),
			SQLitePath:      getEnv("STORAGE_SQLITE_PATH", "data/finance.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			DBName:          getEnv("DB_NAME", "rayan_admin"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		CMS: CMSConfig{
			BaseURL:      getEnv("CMS_BASE_URL", "https://api.medlife.tj"),
			AccessToken:  getEnv("CMS_ACCESS_TOKEN", ""),
			RefreshToken: getEnv("CMS_REFRESH_TOKEN", ""),
			Timeout:      getEnvDuration("CMS_TIMEOUT", 30*time.Second),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", true),
		},
	}

	if !cfg.Storage.Backend.IsValid() {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be one of file, sqlite, postgres", cfg.Storage.Backend)
	}

	if cfg.Storage.Backend == BackendPostgres {
		cfg.Storage.DSN = getEnv("DB_DSN", "")
		if cfg.Storage.DSN == "" {
			cfg.Storage.DSN = fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				cfg.Storage.Host,
				cfg.Storage.Port,
				getEnv("DB_USER", "postgres"),
				getEnv("DB_PASSWORD", ""),
				cfg.Storage.DBName,
				getEnv("DB_SSLMODE", "disable"),
			)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
