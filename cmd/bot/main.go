package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/flowly/internal/common/logging"
	"github.com/KirkDiggler/flowly/internal/config"
	"github.com/KirkDiggler/flowly/internal/handlers/discord"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	dailyRepo "github.com/KirkDiggler/flowly/internal/repositories/daily_minutes"
	sessionRepo "github.com/KirkDiggler/flowly/internal/repositories/focus_session"
	habitRepo "github.com/KirkDiggler/flowly/internal/repositories/habit"
	subjectRepo "github.com/KirkDiggler/flowly/internal/repositories/subject"
	weeklyRepo "github.com/KirkDiggler/flowly/internal/repositories/weekly_summary"
	focusService "github.com/KirkDiggler/flowly/internal/services/focus"
	habitService "github.com/KirkDiggler/flowly/internal/services/habit"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	studyService "github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store, err)
	}
	defer closeStore()

	// Initialize repositories
	sessions, err := sessionRepo.NewKV(&sessionRepo.Config{
		Store:     store,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create focus session repository: %v", err)
	}

	daily, err := dailyRepo.NewKV(&dailyRepo.Config{
		Store:     store,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create daily minutes repository: %v", err)
	}

	subjects, err := subjectRepo.NewKV(&subjectRepo.Config{
		Store:     store,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create subject repository: %v", err)
	}

	weekly, err := weeklyRepo.NewKV(&weeklyRepo.Config{
		Store:     store,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create weekly summary repository: %v", err)
	}

	habits, err := habitRepo.NewKV(&habitRepo.Config{
		Store:     store,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create habit repository: %v", err)
	}

	// Initialize services
	focusSvc, err := focusService.New(&focusService.Config{
		SessionRepo:            sessions,
		DailyMinutesRepo:       daily,
		SubjectRepo:            subjects,
		WeeklySummaryRepo:      weekly,
		Logger:                 logger,
		DefaultDurationMinutes: cfg.DefaultDurationMinutes,
	})
	if err != nil {
		log.Fatalf("Failed to create focus service: %v", err)
	}

	studySvc, err := studyService.New(&studyService.Config{
		SessionRepo:       sessions,
		DailyMinutesRepo:  daily,
		SubjectRepo:       subjects,
		WeeklySummaryRepo: weekly,
		Logger:            logger,
	})
	if err != nil {
		log.Fatalf("Failed to create study service: %v", err)
	}

	habitSvc, err := habitService.New(&habitService.Config{
		HabitRepo: habits,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create habit service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Materialize the idle session of the local namespace
	initialized, err := focusSvc.InitializeSession(context.Background(), &focusService.InitializeSessionInput{})
	if err != nil {
		log.Fatalf("Failed to initialize focus session: %v", err)
	}
	logger.Info("focus session ready", "created", initialized.Created, "running", initialized.Session.IsRunning())

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		FocusService:     focusSvc,
		StudyService:     studySvc,
		HabitService:     habitSvc,
		MessagingService: messagingSvc,
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

// openStore connects the configured key-value backend
func openStore(cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store, err := kvstore.NewSQLite(&kvstore.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing SQLite store: %v", err)
			}
		}, nil
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: 5 * time.Second,
		})

		store, err := kvstore.NewRedis(&kvstore.RedisConfig{RedisClient: redisClient})
		if err != nil {
			redisClient.Close()
			return nil, nil, err
		}
		return store, func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}, nil
	}
}
