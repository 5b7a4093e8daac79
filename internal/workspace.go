package internal

import (
	"encoding/json"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Workspace describes one discovered workspaceStorage entry.
type Workspace struct {
	ID         string      // workspaceStorage directory name
	FolderURI  string      // folder reference from workspace.json
	FolderPath string      // decoded filesystem path
	Name       string      // last path segment of FolderPath
	DBPath     string      // path to the workspace state database
	DBExists   bool
	Stats      *StoreStats // attached by AnalyzeAllWorkspaces, nil until then
}

var windowsDrivePath = regexp.MustCompile(`^/[A-Za-z]:`)

// DecodeFolderURI converts a folder URI (file:///...) into a filesystem path.
func DecodeFolderURI(uri string) string {
	p := strings.TrimPrefix(uri, "file://")
	if decoded, err := url.PathUnescape(p); err == nil {
		p = decoded
	}
	// file:///C:/Users/... style URIs carry a spurious leading slash
	if windowsDrivePath.MatchString(p) {
		p = p[1:]
	}
	return p
}

// DiscoverWorkspaces enumerates immediate subdirectories of workspaceStorage
// and builds a descriptor for each one with a parseable workspace.json.
// Directories without a descriptor are skipped. A missing workspaceStorage
// directory yields a StoreNotFound error.
func DiscoverWorkspaces(workspaceStorage string) (map[string]*Workspace, error) {
	entries, err := os.ReadDir(workspaceStorage)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewStoreNotFound(workspaceStorage)
		}
		return nil, &StorageError{Path: workspaceStorage, Op: "read", Err: err}
	}

	workspaces := make(map[string]*Workspace)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		id := entry.Name()
		descriptorPath := filepath.Join(workspaceStorage, id, "workspace.json")

		data, err := os.ReadFile(descriptorPath)
		if err != nil {
			// No descriptor, not a workspace
			continue
		}

		var descriptor struct {
			Folder string `json:"folder"`
		}
		if err := json.Unmarshal(data, &descriptor); err != nil {
			LogDebug("skipping %s: %v", id, &ParseError{Source: "workspace.json", Key: descriptorPath, Err: err})
			continue
		}

		folderPath := DecodeFolderURI(descriptor.Folder)
		name := ""
		if folderPath != "" {
			name = path.Base(strings.ReplaceAll(folderPath, "\\", "/"))
		}
		dbPath := filepath.Join(workspaceStorage, id, "state.vscdb")
		_, statErr := os.Stat(dbPath)

		workspaces[id] = &Workspace{
			ID:         id,
			FolderURI:  descriptor.Folder,
			FolderPath: folderPath,
			Name:       name,
			DBPath:     dbPath,
			DBExists:   statErr == nil,
		}
	}

	return workspaces, nil
}
