package internal

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// BlobPlaceholder renders the stand-in stored for a value whose bytes are not
// valid text. The original byte length is preserved, the bytes are not.
func BlobPlaceholder(size int) string {
	return fmt.Sprintf("<BLOB: %d bytes>", size)
}

// LoadGlobalStore reads every record from the global state database into a
// key -> text map. Values that do not decode as UTF-8 are replaced with a
// sized placeholder. A missing database yields a StoreNotFound error.
func LoadGlobalStore(dbPath string) (map[string]string, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, NewStoreNotFound(dbPath)
	}

	db, err := OpenStore(dbPath)
	if err != nil {
		return nil, &StorageError{Path: dbPath, Op: "open", Err: err}
	}
	defer func() { _ = db.Close() }()

	records, err := ScanItemTable(db)
	if err != nil {
		return nil, &StorageError{Path: dbPath, Op: "read", Err: err}
	}

	global := make(map[string]string, len(records))
	for _, rec := range records {
		if rec.Value == nil {
			continue
		}
		if utf8.Valid(rec.Value) {
			global[rec.Key] = string(rec.Value)
		} else {
			global[rec.Key] = BlobPlaceholder(len(rec.Value))
		}
	}

	return global, nil
}
