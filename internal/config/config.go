package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Bundle   BundleConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	NotificationLog    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	CartLineTopic      string
}

type DatabaseConfig struct {
	Connection   string
	MaxIdleConns int
	MaxOpenConns int
	LogLevel     string
}

type BundleConfig struct {
	CrossSellDiscountRate      float64
	CrossSellCandidates        int
	FrequentlyBoughtRate       float64
	FrequentlyBoughtCandidates int
	CurrencyCode               string
	ViewTTL                    time.Duration
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
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			NotificationLog:    getEnv("NOTIFICATION_LOG_FILE_PATH", "logs/notification.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			CartLineTopic:      getEnv("CART_LINE_TOPIC_NAME", "CART_LINE_ADDED"),
		},
		Database: DatabaseConfig{
			Connection:   getEnv("DB_CONNECTION_STRING", ""),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			LogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
		},
		Bundle: BundleConfig{
			CrossSellDiscountRate:      getEnvAsFloat("BUNDLE_CROSS_SELL_DISCOUNT", 0.10),
			CrossSellCandidates:        getEnvAsInt("BUNDLE_CROSS_SELL_CANDIDATES", 1),
			FrequentlyBoughtRate:       getEnvAsFloat("BUNDLE_FBT_DISCOUNT", 0.15),
			FrequentlyBoughtCandidates: getEnvAsInt("BUNDLE_FBT_CANDIDATES", 2),
			CurrencyCode:               getEnv("BUNDLE_CURRENCY_CODE", "USD"),
			ViewTTL:                    time.Duration(getEnvAsInt("BUNDLE_VIEW_TTL_MINUTES", 60)) * time.Minute,
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
