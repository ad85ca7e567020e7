package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
	Output  string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	Driver string // file, memory, redis, postgres
	Path   string
	Prefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() (*Config, error) {
	// .env boleh tidak ada, environment tetap dipakai
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("APP_NAME", "moviebook")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", defaultDir("logs"))
	v.SetDefault("OUTPUT", "table")
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_TIMEOUT_SECONDS", 15)
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("STORAGE_PATH", filepath.Join(defaultDir(""), "storage.json"))
	v.SetDefault("STORAGE_PREFIX", "moviebook:")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 4)

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
			Output:  v.GetString("OUTPUT"),
		},
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
			Path:   v.GetString("STORAGE_PATH"),
			Prefix: v.GetString("STORAGE_PREFIX"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
	}

	return config, nil
}

// defaultDir returns ~/.moviebook/<sub>, falling back to the working directory.
func defaultDir(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".moviebook", sub)
	}
	return filepath.Join(home, ".moviebook", sub)
}
