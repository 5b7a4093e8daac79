package testutil

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateStateDB creates a state.vscdb-style database at dbPath with the given
// ItemTable records. Values may be text or arbitrary bytes.
func CreateStateDB(t *testing.T, dbPath string, records map[string][]byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	insertSQL := "INSERT INTO ItemTable (key, value) VALUES (?, ?)"
	for key, value := range records {
		if _, err := db.Exec(insertSQL, key, value); err != nil {
			t.Fatalf("Failed to insert record %s: %v", key, err)
		}
	}
}

// CreateGlobalStoreFixture creates <basePath>/globalStorage/state.vscdb with
// the given records.
func CreateGlobalStoreFixture(t *testing.T, basePath string, records map[string][]byte) string {
	t.Helper()
	dbPath := filepath.Join(basePath, "globalStorage", "state.vscdb")
	CreateStateDB(t, dbPath, records)
	return dbPath
}

// CreateWorkspaceFixture creates a workspaceStorage entry with a
// workspace.json descriptor naming folderURI. When records is non-nil a
// state.vscdb with those records is created too.
func CreateWorkspaceFixture(t *testing.T, basePath, workspaceID, folderURI string, records map[string][]byte) string {
	t.Helper()
	workspaceDir := filepath.Join(basePath, "workspaceStorage", workspaceID)
	if err := os.MkdirAll(workspaceDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	descriptor := map[string]interface{}{
		"folder": folderURI,
	}
	jsonData, _ := json.Marshal(descriptor)
	if err := os.WriteFile(filepath.Join(workspaceDir, "workspace.json"), jsonData, 0644); err != nil {
		t.Fatalf("Failed to write workspace.json: %v", err)
	}

	if records != nil {
		CreateStateDB(t, filepath.Join(workspaceDir, "state.vscdb"), records)
	}

	return workspaceDir
}

// CreateBareWorkspaceDir creates a workspaceStorage subdirectory without a
// descriptor file. Discovery must skip it.
func CreateBareWorkspaceDir(t *testing.T, basePath, workspaceID string) string {
	t.Helper()
	workspaceDir := filepath.Join(basePath, "workspaceStorage", workspaceID)
	if err := os.MkdirAll(workspaceDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}
	return workspaceDir
}

// TextRecords converts a key -> string map into the raw record form the
// fixture helpers take.
func TextRecords(records map[string]string) map[string][]byte {
	out := make(map[string][]byte, len(records))
	for key, value := range records {
		out[key] = []byte(value)
	}
	return out
}
