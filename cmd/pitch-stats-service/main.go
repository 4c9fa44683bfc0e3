package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/cache"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/logger"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/providers/statcast"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	log := logger.New().WithField("service", "pitch-stats-service")

	config := loadConfig()

	// Initialize Redis client
	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	redisClient := redis.NewClient(opts)
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Info("Connected to Redis")

	// Create handler
	handler := handlers.NewHandler(
		statcast.New(),
		cache.NewSeasonCache(redisClient),
		logger.New(),
		config.DefaultMinPitches,
	)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(180 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)
	r.Get("/api/v1/players", handler.GetPlayers)
	r.Get("/api/v1/out-percentage", handler.GetOutPercentage)
	r.Post("/api/v1/cache/invalidate", handler.InvalidateCache)

	// Start server
	addr := fmt.Sprintf(":%d", config.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 180 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Pitch Stats Service started on port %d", config.Port)
		log.Infof("Default min pitches per type: %d", config.DefaultMinPitches)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down gracefully...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}

	log.Info("Pitch Stats Service stopped")
}

// Config holds service configuration
type Config struct {
	Port              int
	RedisURL          string
	DefaultMinPitches int
}

// loadConfig loads configuration from environment
func loadConfig() Config {
	return Config{
		Port:              getEnvInt("PITCH_STATS_PORT", 8087),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
		DefaultMinPitches: getEnvInt("MIN_PITCHES_DEFAULT", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
