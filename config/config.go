package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-admin/utils"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	DB       DBConfig
	HTTP     HTTPConfig
	CORS     CORSConfig
	Orders   OrdersConfig
}

type DBConfig struct {
	Driver string // sqlite, mysql or postgres
	Source string // DSN understood by the driver
}

type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type OrdersConfig struct {
	// StrictTransitions rejects status changes outside the nominal lifecycle.
	StrictTransitions bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debug("no .env file loaded, using process environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Source: getEnv("DB_SOURCE", "restaurant.db"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
			RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Orders: OrdersConfig{
			StrictTransitions: getBool("ORDER_STRICT_TRANSITIONS", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		utils.InfoLogger.Debugf("%s not set or invalid, using %s", key, fallback)
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
