package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Record is one key/raw-value row from a store's ItemTable.
type Record struct {
	Key   string
	Value []byte
}

// OpenStore opens a state database in read-only mode
func OpenStore(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// ScanItemTable reads every row of the ItemTable key-value table.
// Values are returned as raw bytes; NULL values come back as nil.
func ScanItemTable(db *sql.DB) ([]Record, error) {
	rows, err := db.Query("SELECT key, value FROM ItemTable")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Key, &rec.Value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
