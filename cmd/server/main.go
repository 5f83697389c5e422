package main

import (
	"context" // Context for the Redis ping

	"loyalty_service/internal/api"        // HTTP handlers
	"loyalty_service/internal/config"     // Application configuration
	dbpkg "loyalty_service/internal/db"   // Database connection
	"loyalty_service/internal/middleware" // JWT middleware
	"loyalty_service/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := dbpkg.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup the Redis cache when an address is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	var cache *utils.Cache
	if redisClient != nil {
		cache = utils.NewCache(redisClient, cfg.CacheTTL)
	}
	entries := api.NewEntriesHandler(db, cache)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Bare listing endpoint
	r.GET("/entries", entries.List)

	// API-namespaced group, optionally guarded by a bearer token
	apiGroup := r.Group("/api")
	if cfg.AuthEnabled {
		apiGroup.POST("/auth/token", api.TokenHandler(cfg))
		guarded := apiGroup.Group("/")
		guarded.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		guarded.GET("/entries", entries.List)
	} else {
		apiGroup.GET("/entries", entries.List)
	}

	logrus.Infof("Server running on :%s", cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
