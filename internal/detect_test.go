package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mtang/cursor-insight/testutil"
)

func TestNewStoragePaths(t *testing.T) {
	sp := NewStoragePaths("/data/Cursor/User")

	if sp.BasePath != "/data/Cursor/User" {
		t.Errorf("BasePath = %q, want %q", sp.BasePath, "/data/Cursor/User")
	}
	if sp.GlobalStorage != filepath.Join("/data/Cursor/User", "globalStorage") {
		t.Errorf("GlobalStorage = %q", sp.GlobalStorage)
	}
	if sp.WorkspaceStorage != filepath.Join("/data/Cursor/User", "workspaceStorage") {
		t.Errorf("WorkspaceStorage = %q", sp.WorkspaceStorage)
	}
	if sp.GlobalStoreDBPath() != filepath.Join(sp.GlobalStorage, "state.vscdb") {
		t.Errorf("GlobalStoreDBPath() = %q", sp.GlobalStoreDBPath())
	}
}

func TestStoragePaths_Exists(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	sp := NewStoragePaths(tmpDir)

	if sp.GlobalStoreExists() {
		t.Error("GlobalStoreExists() = true for empty directory")
	}
	if sp.WorkspaceStorageExists() {
		t.Error("WorkspaceStorageExists() = true for empty directory")
	}

	testutil.CreateGlobalStoreFixture(t, tmpDir, nil)
	if err := os.MkdirAll(sp.WorkspaceStorage, 0755); err != nil {
		t.Fatalf("Failed to create workspaceStorage: %v", err)
	}

	if !sp.GlobalStoreExists() {
		t.Error("GlobalStoreExists() = false after fixture created")
	}
	if !sp.WorkspaceStorageExists() {
		t.Error("WorkspaceStorageExists() = false after directory created")
	}
}

func TestResolveStoragePaths_OverrideWins(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("data_dir: /from/config\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	sp, err := ResolveStoragePaths("/from/flag", configFile)
	if err != nil {
		t.Fatalf("ResolveStoragePaths() error = %v", err)
	}
	if sp.BasePath != "/from/flag" {
		t.Errorf("BasePath = %q, want the --data-dir override", sp.BasePath)
	}
}

func TestResolveStoragePaths_ConfigFile(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("data_dir: /from/config\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	sp, err := ResolveStoragePaths("", configFile)
	if err != nil {
		t.Fatalf("ResolveStoragePaths() error = %v", err)
	}
	if sp.BasePath != "/from/config" {
		t.Errorf("BasePath = %q, want the config file value", sp.BasePath)
	}
}

func TestResolveStoragePaths_MissingExplicitConfig(t *testing.T) {
	_, err := ResolveStoragePaths("", "/does/not/exist/config.yaml")
	if err == nil {
		t.Error("ResolveStoragePaths() with missing explicit config should fail")
	}
}
