package db

// Migrate brings databases created by older builds up to the current schema.
func (db *DB) Migrate() error {
	hasSlotsUpdatedAt, err := db.hasColumn("slots", "updated_at")
	if err != nil {
		return err
	}
	if !hasSlotsUpdatedAt {
		if _, err := db.Exec("ALTER TABLE slots ADD COLUMN updated_at TIMESTAMP"); err != nil {
			return err
		}
	}

	// Slots written before updated_at existed get a timestamp so /status can report them.
	if _, err := db.Exec(`
		UPDATE slots
		SET updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE updated_at IS NULL
	`); err != nil {
		return err
	}

	return nil
}

func (db *DB) hasColumn(tableName, columnName string) (bool, error) {
	rows, err := db.Query("PRAGMA table_info(" + tableName + ")")
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notNull int
		var dfltValue any
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == columnName {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return false, nil
}
