package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For cache TTL

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	DBDriver        string        // Database driver: postgres or mysql
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	RedisAddr       string        // Redis server address, empty disables the cache
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	CacheTTL        time.Duration // TTL for cached entry pages
	AuthEnabled     bool          // Whether the API group requires a bearer token
	JWTSecret       string        // JWT signing secret
	APIClientID     string        // Service credential: client id
	APIClientSecret string        // Service credential: client secret
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cacheTTL := 60 * time.Second // Default cache TTL
	if v, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS")); err == nil && v > 0 {
		cacheTTL = time.Duration(v) * time.Second
	}
	return &Config{
		AppPort:         getEnv("APP_PORT", "8000"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "hello_again"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         redisDB,
		CacheTTL:        cacheTTL,
		AuthEnabled:     os.Getenv("AUTH_ENABLED") == "true",
		JWTSecret:       os.Getenv("JWT_SECRET"),
		APIClientID:     os.Getenv("API_CLIENT_ID"),
		APIClientSecret: os.Getenv("API_CLIENT_SECRET"),
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}

// getEnv returns the value of the environment variable or a default
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
