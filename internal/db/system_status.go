package db

import (
	"database/sql"
	"time"

	"pilealire/internal/logger"
)

func (db *DB) UpdateBackupLastRun() {
	dbMutex.Lock()
	_, err := db.Exec("INSERT OR REPLACE INTO system_status (key, last_update) VALUES ('backup_last_run', ?)",
		time.Now().UTC())
	dbMutex.Unlock()
	if err != nil {
		logger.LogMsg(logger.LogError, "Failed to update backup last run time: %v", err)
	}
}

func (db *DB) GetStatus() (Status, error) {
	var s Status

	if err := db.QueryRow("SELECT COUNT(*) FROM slots").Scan(&s.SlotCount); err != nil {
		return Status{}, err
	}

	var lastRun sql.NullTime
	if err := db.QueryRow("SELECT last_update FROM system_status WHERE key = 'backup_last_run'").Scan(&lastRun); err != nil && err != sql.ErrNoRows {
		return Status{}, err
	}
	if lastRun.Valid {
		s.BackupLastRun = lastRun.Time
		s.HasBackupLastRun = true
	}
	return s, nil
}
