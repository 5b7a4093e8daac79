package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StoragePaths holds the resolved paths for Cursor storage
type StoragePaths struct {
	BasePath         string // Cursor User directory
	GlobalStorage    string // globalStorage directory
	WorkspaceStorage string // workspaceStorage directory
}

// NewStoragePaths builds StoragePaths rooted at a Cursor User directory.
func NewStoragePaths(basePath string) StoragePaths {
	return StoragePaths{
		BasePath:         basePath,
		GlobalStorage:    filepath.Join(basePath, "globalStorage"),
		WorkspaceStorage: filepath.Join(basePath, "workspaceStorage"),
	}
}

// DetectStoragePaths detects the Cursor storage paths based on the operating system
func DetectStoragePaths() (StoragePaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var basePath string
	switch runtime.GOOS {
	case "darwin":
		basePath = filepath.Join(home, "Library/Application Support/Cursor/User")
	case "linux":
		basePath = filepath.Join(home, ".config/Cursor/User")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		basePath = filepath.Join(appData, "Cursor", "User")
	default:
		return StoragePaths{}, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	return NewStoragePaths(basePath), nil
}

// ResolveStoragePaths resolves storage paths in priority order: the explicit
// override, then the config file, then per-OS auto-detection.
func ResolveStoragePaths(override, configPath string) (StoragePaths, error) {
	if override != "" {
		return NewStoragePaths(override), nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return StoragePaths{}, err
	}
	if cfg != nil && cfg.DataDir != "" {
		return NewStoragePaths(cfg.DataDir), nil
	}

	return DetectStoragePaths()
}

// GlobalStoreDBPath returns the path to the globalStorage state.vscdb file
func (sp StoragePaths) GlobalStoreDBPath() string {
	return filepath.Join(sp.GlobalStorage, "state.vscdb")
}

// GlobalStoreExists checks if the globalStorage database exists
func (sp StoragePaths) GlobalStoreExists() bool {
	_, err := os.Stat(sp.GlobalStoreDBPath())
	return err == nil
}

// WorkspaceStorageExists checks if the workspaceStorage directory exists
func (sp StoragePaths) WorkspaceStorageExists() bool {
	info, err := os.Stat(sp.WorkspaceStorage)
	return err == nil && info.IsDir()
}
