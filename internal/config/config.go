package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDatabasePath   = "database/PileALire.db"
	defaultBackupDir      = "backups"
	defaultBackupSchedule = "@every 24h"
	defaultBackupKeep     = 7
	defaultSeedVariant    = "demo"
)

// Config holds the application configuration

type Config struct {
	TelegramBotToken  string
	AllowedUsers      []int64
	DatabasePath      string
	BackupDir         string
	BackupSchedule    string
	BackupKeep        int
	SeedVariant       string
	GoogleBooksAPIKey string
}

// Load loads the configuration from environment variables, reading .env first when present.

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current process environment.
func FromEnv() *Config {
	keep := defaultBackupKeep
	if raw := strings.TrimSpace(os.Getenv("BACKUP_KEEP")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			keep = n
		}
	}

	return &Config{
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		AllowedUsers:      parseAllowedUsers(os.Getenv("TELEGRAM_ALLOWED_USERS")),
		DatabasePath:      envOr("DATABASE_PATH", defaultDatabasePath),
		BackupDir:         envOr("BACKUP_DIR", defaultBackupDir),
		BackupSchedule:    envOr("BACKUP_SCHEDULE", defaultBackupSchedule),
		BackupKeep:        keep,
		SeedVariant:       strings.ToLower(envOr("SEED_VARIANT", defaultSeedVariant)),
		GoogleBooksAPIKey: os.Getenv("GOOGLE_BOOKS_API_KEY"),
	}
}

func parseAllowedUsers(raw string) []int64 {
	allowedUserIDs := strings.Split(raw, ",")
	allowedUsers := make([]int64, 0, len(allowedUserIDs))
	for _, userID := range allowedUserIDs {
		id, err := strconv.ParseInt(strings.TrimSpace(userID), 10, 64)
		if err == nil {
			allowedUsers = append(allowedUsers, id)
		}
	}
	return allowedUsers
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
