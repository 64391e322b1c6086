package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"pilealire/internal/appcopy"
	"pilealire/internal/bot"
	"pilealire/internal/config"
	"pilealire/internal/cron"
	"pilealire/internal/db"
	"pilealire/internal/googlebooks"
	"pilealire/internal/library"
	"pilealire/internal/logger"
	"pilealire/internal/notify"
	"pilealire/internal/persist"
)

type store struct {
	cfg      *config.Config
	database *db.DB
	data     *persist.Binding[library.AppData]
}

// openStore loads the configuration, opens the database and binds the library slot.
func openStore() (*store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	variant, err := library.ParseSeedVariant(cfg.SeedVariant)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	database, err := db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.CreateTables(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	data := persist.Bind(database, library.StorageKey, library.InitialData(variant), persist.WithCheck(library.Validate))
	if err := data.Init(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("load library: %w", err)
	}

	return &store{cfg: cfg, database: database, data: data}, nil
}

func (s *store) Close() {
	if err := s.database.Close(); err != nil {
		logger.LogMsg(logger.LogError, "Failed to close database: %v", err)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot and the backup scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger()

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if s.cfg.TelegramBotToken == "" {
				return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
			}
			if len(s.cfg.AllowedUsers) == 0 {
				logger.LogMsg(logger.LogWarning, "TELEGRAM_ALLOWED_USERS is empty; every chat will be refused")
			}

			api, err := tgbotapi.NewBotAPI(s.cfg.TelegramBotToken)
			if err != nil {
				return fmt.Errorf("initialize Telegram bot: %w", err)
			}
			notifier := notify.NewTelegramNotifier(api)

			scheduler := cron.NewScheduler(s.data, s.database, notifier, s.cfg.AllowedUsers, s.cfg.BackupDir, s.cfg.BackupKeep, s.cfg.BackupSchedule)
			if err := scheduler.Start(); err != nil {
				return err
			}
			defer scheduler.Stop()

			appBot := bot.New(api, notifier, s.data, s.database, googlebooks.NewClient(s.cfg.GoogleBooksAPIKey), s.cfg)

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-sigs
				logger.LogMsg(logger.LogInfo, "Received %s, shutting down", sig)
				appBot.Stop()
			}()

			appBot.Start()
			return nil
		},
	}
}

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library as JSON to stdout or a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := s.data.Get()
			if err != nil {
				return err
			}

			if out == "" {
				return library.DownloadJSON(cmd.OutOrStdout(), data)
			}

			info, err := os.Stat(out)
			if err == nil && info.IsDir() {
				path, err := library.WriteBackup(out, data, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), path)
				return nil
			}
			return os.WriteFile(out, []byte(library.ExportData(data)), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write, or a directory to receive "+library.BackupFilePrefix+"<date>"+library.BackupFileExt)
	return cmd
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the library with an exported JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			data, err := library.ImportData(string(raw))
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.data.Set(data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books, %d comments, %d stats\n", len(data.Books), len(data.Comments), len(data.Stats))
			return nil
		},
	}
}

func newResetCommand() *cobra.Command {
	var wipe bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the seed library",
		Long:  "Restore the seed library selected by SEED_VARIANT. With --clear the slot is deleted instead and re-seeded on the next start.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if wipe {
				if err := s.database.DeleteSlot(s.data.Key()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %q\n", s.data.Key())
				return nil
			}

			data, err := s.data.Reset()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Library reset to %d books\n", len(data.Books))
			return nil
		},
	}
	cmd.Flags().BoolVar(&wipe, "clear", false, "delete the stored slot instead of writing the seed")
	return cmd
}

func newStatsCommand() *cobra.Command {
	var recompute bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print reading statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := s.data.Get()
			if err != nil {
				return err
			}
			if recompute {
				data, err = s.data.Update(func(d *library.AppData) error {
					d.RecomputeStats()
					return nil
				})
				if err != nil {
					return err
				}
			}

			labels := appcopy.Copy.Labels
			counts := library.CountByStatus(data.Books)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d\n%s: %d\n%s: %d\n", labels.StatsRead, counts.Read, labels.StatsReading, counts.Reading, labels.StatsToRead, counts.ToRead)
			for _, st := range data.Stats {
				fmt.Fprintf(w, "  %s: %d\n", st.Category, st.BooksRead)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&recompute, "recompute", false, "rebuild per-category counts from read books and store them")
	return cmd
}
