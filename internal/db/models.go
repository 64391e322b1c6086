package db

import "time"

type Status struct {
	SlotCount        int
	BackupLastRun    time.Time
	HasBackupLastRun bool
}

// SlotInfo describes a stored slot without decoding its value.
type SlotInfo struct {
	Key          string
	Size         int
	UpdatedAt    time.Time
	HasUpdatedAt bool
}
