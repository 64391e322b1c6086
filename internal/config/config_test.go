package config

import (
	"reflect"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_ALLOWED_USERS", "DATABASE_PATH", "BACKUP_DIR",
		"BACKUP_SCHEDULE", "BACKUP_KEEP", "SEED_VARIANT", "GOOGLE_BOOKS_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.DatabasePath != "database/PileALire.db" {
		t.Fatalf("DatabasePath=%q", cfg.DatabasePath)
	}
	if cfg.BackupDir != "backups" || cfg.BackupSchedule != "@every 24h" || cfg.BackupKeep != 7 {
		t.Fatalf("backup defaults = %q/%q/%d", cfg.BackupDir, cfg.BackupSchedule, cfg.BackupKeep)
	}
	if cfg.SeedVariant != "demo" {
		t.Fatalf("SeedVariant=%q, want demo", cfg.SeedVariant)
	}
	if len(cfg.AllowedUsers) != 0 {
		t.Fatalf("AllowedUsers=%v, want none", cfg.AllowedUsers)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_ALLOWED_USERS", " 42, nope ,7")
	t.Setenv("DATABASE_PATH", "/data/pile.db")
	t.Setenv("BACKUP_DIR", "/data/backups")
	t.Setenv("BACKUP_SCHEDULE", "0 3 * * *")
	t.Setenv("BACKUP_KEEP", "30")
	t.Setenv("SEED_VARIANT", "EMPTY")
	t.Setenv("GOOGLE_BOOKS_API_KEY", "key")

	cfg := FromEnv()
	if cfg.TelegramBotToken != "123:abc" || cfg.GoogleBooksAPIKey != "key" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AllowedUsers, []int64{42, 7}) {
		t.Fatalf("AllowedUsers=%v, want [42 7]", cfg.AllowedUsers)
	}
	if cfg.DatabasePath != "/data/pile.db" || cfg.BackupDir != "/data/backups" {
		t.Fatalf("paths=%q/%q", cfg.DatabasePath, cfg.BackupDir)
	}
	if cfg.BackupSchedule != "0 3 * * *" || cfg.BackupKeep != 30 {
		t.Fatalf("backup=%q/%d", cfg.BackupSchedule, cfg.BackupKeep)
	}
	if cfg.SeedVariant != "empty" {
		t.Fatalf("SeedVariant=%q, want empty", cfg.SeedVariant)
	}
}

func TestFromEnv_IgnoresInvalidBackupKeep(t *testing.T) {
	for _, raw := range []string{"0", "-3", "many"} {
		t.Setenv("BACKUP_KEEP", raw)
		if got := FromEnv().BackupKeep; got != 7 {
			t.Fatalf("BACKUP_KEEP=%q gave %d, want default 7", raw, got)
		}
	}
}
