package db

import (
	"database/sql"
	"errors"
	"time"
)

// GetSlot returns the raw value stored under key. ok is false when the slot
// has never been written.
func (db *DB) GetSlot(key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// PutSlot overwrites the slot, creating it when absent.
func (db *DB) PutSlot(key, value string) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	_, err := db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (db *DB) DeleteSlot(key string) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	_, err := db.Exec("DELETE FROM slots WHERE key = ?", key)
	return err
}

func (db *DB) GetSlotInfo(key string) (SlotInfo, bool, error) {
	info := SlotInfo{Key: key}
	var updatedAt sql.NullString
	err := db.QueryRow("SELECT LENGTH(CAST(value AS BLOB)), CAST(updated_at AS TEXT) FROM slots WHERE key = ?", key).
		Scan(&info.Size, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SlotInfo{}, false, nil
	}
	if err != nil {
		return SlotInfo{}, false, err
	}
	if updatedAt.Valid {
		if t, err := parseSQLiteTime(updatedAt.String); err == nil {
			info.UpdatedAt = t
			info.HasUpdatedAt = true
		}
	}
	return info, true, nil
}
