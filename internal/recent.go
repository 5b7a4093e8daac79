package internal

import (
	"encoding/json"
	"path"
	"strings"
)

// RecentlyOpenedKey is the global store record listing recently opened paths.
const RecentlyOpenedKey = "history.recentlyOpenedPathsList"

// DefaultRecentLimit caps the recently-opened listing unless overridden.
const DefaultRecentLimit = 10

// RecentProject is one entry from the recently-opened list, cross-referenced
// against the discovered workspaces.
type RecentProject struct {
	FolderURI   string
	FolderPath  string
	Name        string
	WorkspaceID string // empty when no workspace matches the folder URI
}

// RecentProjects parses the recently-opened record and returns the first
// limit entries in original order. A missing record yields (nil, nil); an
// unparsable one yields a ParseError.
func RecentProjects(global map[string]string, workspaces map[string]*Workspace, limit int) ([]RecentProject, error) {
	raw, ok := global[RecentlyOpenedKey]
	if !ok {
		return nil, nil
	}

	var record struct {
		Entries []struct {
			FolderURI string `json:"folderUri"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, &ParseError{Source: "recentlyOpenedPathsList", Key: RecentlyOpenedKey, Err: err}
	}

	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if len(record.Entries) < limit {
		limit = len(record.Entries)
	}

	projects := make([]RecentProject, 0, limit)
	for _, entry := range record.Entries[:limit] {
		folderPath := DecodeFolderURI(entry.FolderURI)
		name := ""
		if folderPath != "" {
			name = path.Base(strings.ReplaceAll(folderPath, "\\", "/"))
		}

		project := RecentProject{
			FolderURI:  entry.FolderURI,
			FolderPath: folderPath,
			Name:       name,
		}
		for id, ws := range workspaces {
			if ws.FolderURI == entry.FolderURI {
				project.WorkspaceID = id
				break
			}
		}
		projects = append(projects, project)
	}

	return projects, nil
}
