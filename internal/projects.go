package internal

import (
	"fmt"
	"sort"
)

// ProjectEntry is one suggested project configuration entry.
type ProjectEntry struct {
	Name        string `json:"name"`
	WorkspaceID string `json:"workspace_id"`
	Path        string `json:"path"`
}

// ProjectsConfig is the suggested projects.json structure.
type ProjectsConfig struct {
	Projects map[string]ProjectEntry `json:"projects"`
}

// ProjectMapping groups workspaces by display name and records collisions.
type ProjectMapping struct {
	// Groups maps display name to workspace IDs, sorted for stable output.
	Groups map[string][]string
	// Conflicts lists display names shared by more than one workspace.
	Conflicts []string
}

// BuildProjectMapping groups the discovered workspaces by display name.
func BuildProjectMapping(workspaces map[string]*Workspace) ProjectMapping {
	groups := make(map[string][]string)
	for id, ws := range workspaces {
		groups[ws.Name] = append(groups[ws.Name], id)
	}

	var conflicts []string
	for name, ids := range groups {
		sort.Strings(ids)
		if len(ids) > 1 {
			conflicts = append(conflicts, name)
		}
	}
	sort.Strings(conflicts)

	return ProjectMapping{Groups: groups, Conflicts: conflicts}
}

// SortedNames returns the display names in ascending order.
func (m ProjectMapping) SortedNames() []string {
	names := make([]string, 0, len(m.Groups))
	for name := range m.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName returns the name a workspace is emitted under: the bare group
// name when unique, or name-<i> (1-based) when the group has collisions.
func (m ProjectMapping) DisplayName(name string, index int) string {
	if len(m.Groups[name]) <= 1 {
		return name
	}
	return fmt.Sprintf("%s-%d", name, index+1)
}

// SuggestedConfig builds the suggested projects.json mapping. Colliding
// display names are disambiguated with a 1-based suffix.
func (m ProjectMapping) SuggestedConfig(workspaces map[string]*Workspace) ProjectsConfig {
	cfg := ProjectsConfig{Projects: make(map[string]ProjectEntry)}

	for _, name := range m.SortedNames() {
		for i, id := range m.Groups[name] {
			ws := workspaces[id]
			displayName := m.DisplayName(name, i)
			cfg.Projects[displayName] = ProjectEntry{
				Name:        displayName,
				WorkspaceID: id,
				Path:        ws.FolderPath,
			}
		}
	}

	return cfg
}
