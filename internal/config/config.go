package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Cache    CacheConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	// Mode selects the resolver strategy: "token" parses a signed session
	// token, "fixed" always resolves to FallbackID (development mode).
	Mode       string
	JWTSecret  string
	FallbackID string
}

type CacheConfig struct {
	RedisURL        string
	ListTTLSeconds  int
	CountTTLSeconds int
}

type EventsConfig struct {
	FavoriteTopic string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Mode:       getEnv("SESSION_MODE", "fixed"),
			JWTSecret:  getEnv("SESSION_JWT_SECRET", ""),
			FallbackID: getEnv("SESSION_FALLBACK_ID", "dev_test_user_fixed"),
		},
		Cache: CacheConfig{
			RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
			ListTTLSeconds:  getEnvAsInt("RESTAURANT_LIST_CACHE_TTL", 30),
			CountTTLSeconds: getEnvAsInt("FAVORITE_COUNT_CACHE_TTL", 300),
		},
		Events: EventsConfig{
			FavoriteTopic: getEnv("FAVORITE_EVENTS_TOPIC_NAME", "FAVORITE_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
