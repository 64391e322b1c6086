package cron

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"pilealire/internal/appcopy"
	"pilealire/internal/db"
	"pilealire/internal/library"
	"pilealire/internal/logger"
	"pilealire/internal/notify"
	"pilealire/internal/persist"
)

// Scheduler writes periodic JSON backups of the library.

type Scheduler struct {
	Data         *persist.Binding[library.AppData]
	DB           *db.DB
	Notifier     notify.Notifier
	AllowedUsers []int64

	BackupDir string
	Keep      int
	Schedule  string

	now  func() time.Time
	cron *cron.Cron
	wg   sync.WaitGroup
}

// NewScheduler creates a new scheduler. notifier may be nil.

func NewScheduler(data *persist.Binding[library.AppData], database *db.DB, notifier notify.Notifier, allowedUsers []int64, backupDir string, keep int, schedule string) *Scheduler {
	return &Scheduler{
		Data:         data,
		DB:           database,
		Notifier:     notifier,
		AllowedUsers: allowedUsers,
		BackupDir:    backupDir,
		Keep:         keep,
		Schedule:     schedule,
		now:          time.Now,
	}
}

// Start runs a backup immediately, then on the configured schedule.

func (s *Scheduler) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.Schedule, s.run); err != nil {
		logger.LogMsg(logger.LogError, "Failed to set up cron job: %v", err)
		return fmt.Errorf("invalid backup schedule %q: %w", s.Schedule, err)
	}

	logger.LogMsg(logger.LogInfo, "Scheduler started (runs immediately, then %s)", s.Schedule)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run()
	}()

	s.cron = c
	c.Start()
	return nil
}

// Stop waits for running backups to finish, the startup one included.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.wg.Wait()
}

func (s *Scheduler) run() {
	if _, err := s.performBackup(); err != nil {
		s.notifyFailure(err)
		return
	}
	if s.DB != nil {
		s.DB.UpdateBackupLastRun()
	}
}

func (s *Scheduler) performBackup() (string, error) {
	logger.LogMsg(logger.LogInfo, "Starting scheduled backup")

	data, err := s.Data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library for backup: %v", err)
		return "", err
	}

	path, err := library.WriteBackup(s.BackupDir, data, s.now())
	if err != nil {
		logger.LogMsg(logger.LogError, "Error writing backup: %v", err)
		return "", err
	}

	removed, err := pruneBackups(s.BackupDir, s.Keep)
	if err != nil {
		// The new backup is on disk; a failed prune is retried next run.
		logger.LogMsg(logger.LogWarning, "Error pruning old backups: %v", err)
	}

	logger.LogMsg(logger.LogInfo, "Scheduled backup completed: %s (%d books, %d old backups removed)", path, len(data.Books), removed)
	return path, nil
}

// pruneBackups keeps the newest keep backup files in dir. File names embed
// the date, so lexical order is chronological.
func pruneBackups(dir string, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, library.BackupFilePrefix+"*"+library.BackupFileExt))
	if err != nil {
		return 0, err
	}
	if len(matches) <= keep {
		return 0, nil
	}

	sort.Strings(matches)
	var errs []string
	removed := 0
	for _, path := range matches[:len(matches)-keep] {
		if err := os.Remove(path); err != nil {
			errs = append(errs, err.Error())
			continue
		}
		removed++
	}
	if len(errs) > 0 {
		return removed, fmt.Errorf("remove old backups: %s", strings.Join(errs, "; "))
	}
	return removed, nil
}

func (s *Scheduler) notifyFailure(cause error) {
	if s.Notifier == nil {
		return
	}

	message := fmt.Sprintf(appcopy.Copy.Errors.BackupFailed, html.EscapeString(cause.Error()))
	for _, chatID := range s.AllowedUsers {
		if err := s.Notifier.SendHTML(chatID, message); err != nil {
			logger.LogMsg(logger.LogError, "Error sending backup failure notification to chat ID %d: %v", chatID, err)
		}
	}
}
