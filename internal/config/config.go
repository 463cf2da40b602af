package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/flowly/internal/common/logging"
)

// Store backends accepted by FLOWLY_STORE
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config captures the environment driven configuration of the bot.
type Config struct {
	DiscordToken  string
	ApplicationID string
	GuildID       string

	Store         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SQLitePath    string

	DefaultDurationMinutes int
	KeyPrefix              string
	LogLevel               slog.Level
}

// Load parses configuration values from the current process environment.
//
// Optional values fall back to defaults. Missing and invalid variables are
// collected and reported together.
func Load() (*Config, error) {
	cfg := &Config{
		Store:                  StoreRedis,
		RedisAddr:              "localhost:6379",
		SQLitePath:             "flowly.db",
		DefaultDurationMinutes: 25,
		KeyPrefix:              "flowly",
		LogLevel:               slog.LevelInfo,
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 4)

	if token := getEnv("DISCORD_TOKEN"); token == "" {
		missing = append(missing, "DISCORD_TOKEN")
	} else {
		cfg.DiscordToken = token
	}

	cfg.ApplicationID = getEnv("APPLICATION_ID")
	cfg.GuildID = getEnv("GUILD_ID")

	if store := strings.ToLower(getEnv("FLOWLY_STORE")); store != "" {
		switch store {
		case StoreRedis, StoreSQLite:
			cfg.Store = store
		default:
			invalid = append(invalid, "FLOWLY_STORE")
		}
	}

	if addr := getEnv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if dbValue := getEnv("REDIS_DB"); dbValue != "" {
		db, err := strconv.Atoi(dbValue)
		if err != nil || db < 0 {
			invalid = append(invalid, "REDIS_DB")
		} else {
			cfg.RedisDB = db
		}
	}

	if path := getEnv("SQLITE_PATH"); path != "" {
		cfg.SQLitePath = path
	}

	if durationValue := getEnv("FLOWLY_DEFAULT_DURATION"); durationValue != "" {
		duration, err := strconv.Atoi(durationValue)
		if err != nil || duration <= 0 {
			invalid = append(invalid, "FLOWLY_DEFAULT_DURATION")
		} else {
			cfg.DefaultDurationMinutes = duration
		}
	}

	if prefix := getEnv("FLOWLY_KEY_PREFIX"); prefix != "" {
		cfg.KeyPrefix = prefix
	}

	if levelValue := getEnv("LOG_LEVEL"); levelValue != "" {
		if level, ok := logging.ParseLevel(levelValue); !ok {
			invalid = append(invalid, "LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
