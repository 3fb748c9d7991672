package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-trap-bot/internal/config"
	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
	"github.com/KirkDiggler/dnd-trap-bot/internal/discord"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/traps"
	"github.com/KirkDiggler/dnd-trap-bot/internal/services"
	"github.com/KirkDiggler/dnd-trap-bot/internal/services/defense"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Discord.Token) > 12 {
		log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	}
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	defenses, err := defense.New(cfg.Rules.Variant, cfg.Rules.DefaultDefense)
	if err != nil {
		log.Fatalf("Failed to create defense resolver: %v", err)
	}
	log.Printf("Using %s rules", cfg.Rules.Variant)

	roller := dice.NewRandomRoller()
	if cfg.Rules.DiceSeed != 0 {
		log.Printf("Using seeded dice (seed=%d)", cfg.Rules.DiceSeed)
		roller = dice.NewSeededRoller(cfg.Rules.DiceSeed)
	}

	providerConfig := &services.ProviderConfig{
		Defenses:      defenses,
		Dice:          dice.NewExpressionRoller(roller),
		Announcer:     discord.NewAnnouncer(dg),
		ErrorReporter: discord.NewErrorReporter(dg),
	}

	// Keep store handles for cleanup
	var (
		redisClient *redis.Client
		sqliteStore *traps.SQLiteStore
	)

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		log.Printf("Connecting to Redis at: %s", cfg.Storage.RedisURL)

		opts, parseErr := redis.ParseURL(cfg.Storage.RedisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
			break
		}

		redisClient = redis.NewClient(opts)

		// Test connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pingErr := redisClient.Ping(ctx).Err()
		cancel()
		if pingErr != nil {
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to in-memory repositories")
			_ = redisClient.Close()
			redisClient = nil
			break
		}

		log.Println("Successfully connected to Redis")
		providerConfig.TrapRepository = traps.NewRedis(redisClient, nil)
		providerConfig.CharacterRepository = characters.NewRedis(redisClient)
		log.Println("Using Redis for persistence")

	case config.StorageSQLite:
		store, openErr := traps.OpenSQLite(cfg.Storage.SQLitePath, nil)
		if openErr != nil {
			log.Fatalf("Failed to open SQLite store: %v", openErr)
		}
		sqliteStore = store
		providerConfig.TrapRepository = store
		log.Printf("Using SQLite for traps at %s (characters in memory)", cfg.Storage.SQLitePath)

	default:
		log.Println("Using in-memory repositories")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		TrapService: serviceProvider.TrapService,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty guild ID for global commands, or a specific guild for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
	if sqliteStore != nil {
		if err := sqliteStore.Close(); err != nil {
			log.Printf("Failed to close SQLite store: %v", err)
		}
	}
}
