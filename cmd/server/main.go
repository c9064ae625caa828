package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/reelcraft/spindle/internal/config"
	"github.com/reelcraft/spindle/internal/handlers/api"
	"github.com/reelcraft/spindle/internal/renderer"
	"github.com/reelcraft/spindle/internal/repositories/spin_history"
	spinService "github.com/reelcraft/spindle/internal/services/spin"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// History is optional for the HTTP server; skip it when Redis
	// is not configured
	var historyRepo spin_history.Repository
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		repo, err := spin_history.NewRedis(&spin_history.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create spin history repository: %v", err)
		}
		historyRepo = repo
	}

	// Load the machine layout
	machine := config.DefaultMachine()
	if path := getEnv("MACHINE_CONFIG", ""); path != "" {
		loaded, err := config.LoadMachine(path)
		if err != nil {
			log.Fatalf("Failed to load machine config: %v", err)
		}
		machine = loaded
	}

	machineRenderer := renderer.NewMemory()

	spinSvc, err := spinService.New(&spinService.Config{
		ReelHeight:    machine.ReelHeight,
		ReelWidth:     machine.ReelWidth,
		SegmentCount:  machine.SegmentCount,
		StopDelayUnit: machine.StopDelayUnit,
		Reels:         machine.Reels,
		Renderer:      machineRenderer,
		HistoryRepo:   historyRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create spin service: %v", err)
	}
	defer spinSvc.Close()

	handler := api.NewHandler(api.HandlerDeps{
		Spin:    spinSvc,
		State:   machineRenderer,
		History: historyRepo,
	})

	addr := getEnv("HTTP_ADDR", ":8080")
	log.Printf("Machine server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler.Router()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
