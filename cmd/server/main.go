package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jihoonmoon/sanyang/internal/common/clock"
	"github.com/jihoonmoon/sanyang/internal/common/uuid"
	"github.com/jihoonmoon/sanyang/internal/handlers/httpapi"
	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	sessionRepo "github.com/jihoonmoon/sanyang/internal/repositories/session"
	"github.com/jihoonmoon/sanyang/internal/roles"
	"github.com/jihoonmoon/sanyang/internal/roster"
	gameService "github.com/jihoonmoon/sanyang/internal/services/game"
	identityService "github.com/jihoonmoon/sanyang/internal/services/identity"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	gr, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create game repository", zap.Error(err))
	}

	sr, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create session repository", zap.Error(err))
	}

	// Load the roster
	rosterPath := getEnv("ROSTER_PATH", "roster.json")
	entries, err := roster.Load(rosterPath)
	if err != nil {
		logger.Fatal("Failed to load roster", zap.String("path", rosterPath), zap.Error(err))
	}

	// Initialize services
	identitySvc, err := identityService.New(&identityService.Config{
		GameRepo:      gr,
		SessionRepo:   sr,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("Failed to create identity service", zap.Error(err))
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Roster:        entries,
		GameRepo:      gr,
		SessionRepo:   sr,
		Assigner:      roles.New(&roles.Config{}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("Failed to create game service", zap.Error(err))
	}

	// Seed a lobby on first boot so logins work before the host resets
	_, err = gr.GetGame(ctx, &gameRepo.GetGameInput{})
	if errors.Is(err, gameRepo.ErrGameNotFound) {
		if _, err := gameSvc.ResetLobby(ctx, &gameService.ResetLobbyInput{}); err != nil {
			logger.Fatal("Failed to seed initial lobby", zap.Error(err))
		}
		logger.Info("Seeded initial lobby", zap.Int("players", len(entries)))
	} else if err != nil {
		logger.Fatal("Failed to check for existing game", zap.Error(err))
	}

	hostPin := getEnv("HOST_PIN", "")
	if hostPin == "" {
		logger.Fatal("HOST_PIN environment variable is required")
	}

	handler, err := httpapi.New(&httpapi.Config{
		IdentityService: identitySvc,
		GameService:     gameSvc,
		HostPin:         hostPin,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handler", zap.Error(err))
	}

	listenAddr := getEnv("LISTEN_ADDR", ":8080")
	server := &http.Server{
		Addr:    listenAddr,
		Handler: handler.Routes(),
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", listenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
