package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/reelcraft/spindle/internal/config"
	"github.com/reelcraft/spindle/internal/handlers/discord"
	"github.com/reelcraft/spindle/internal/repositories/spin_history"
	spinService "github.com/reelcraft/spindle/internal/services/spin"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

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
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	historyRepo, err := spin_history.NewRedis(&spin_history.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create spin history repository: %v", err)
	}

	// Load the machine layout
	machine := config.DefaultMachine()
	if path := getEnv("MACHINE_CONFIG", ""); path != "" {
		machine, err = config.LoadMachine(path)
		if err != nil {
			log.Fatalf("Failed to load machine config: %v", err)
		}
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// The machine message lives in this channel
	machineChannelID := getEnv("MACHINE_CHANNEL_ID", "")
	if machineChannelID == "" {
		log.Fatal("MACHINE_CHANNEL_ID environment variable is required")
	}

	// One session is shared by the renderer and the bot
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	machineRenderer, err := discord.NewRenderer(session, machineChannelID)
	if err != nil {
		log.Fatalf("Failed to create machine renderer: %v", err)
	}

	// Initialize the spin service
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

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		SpinService:   spinSvc,
		HistoryRepo:   historyRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
