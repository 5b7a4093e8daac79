package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Analyzer owns the state of one analysis run: the global data map, the
// discovered workspaces, and the writer the report is rendered to. Every
// pipeline step is a method; state never leaks into package globals.
type Analyzer struct {
	Paths       StoragePaths
	Global      map[string]string
	Workspaces  map[string]*Workspace
	RecentLimit int

	out io.Writer
}

// NewAnalyzer creates an Analyzer for the given storage paths, rendering to out.
func NewAnalyzer(paths StoragePaths, out io.Writer) *Analyzer {
	return &Analyzer{
		Paths:       paths,
		Global:      make(map[string]string),
		Workspaces:  make(map[string]*Workspace),
		RecentLimit: DefaultRecentLimit,
		out:         out,
	}
}

func (a *Analyzer) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// LoadGlobalStore reads the global state database into a.Global. A missing
// database is reported and leaves the map empty; the run continues.
func (a *Analyzer) LoadGlobalStore() error {
	a.printf("%s\n", Section("Loading global storage"))

	dbPath := a.Paths.GlobalStoreDBPath()
	global, err := LoadGlobalStore(dbPath)
	if err != nil {
		if IsStoreNotFound(err) {
			a.printf("%s\n\n", Warn("global database not found: "+dbPath))
			return nil
		}
		return err
	}

	a.Global = global
	a.printf("%s\n\n", Success(fmt.Sprintf("loaded %d global records", len(a.Global))))
	return nil
}

// DiscoverWorkspaces enumerates workspaceStorage into a.Workspaces. A missing
// storage directory is reported and leaves the map empty; the run continues.
func (a *Analyzer) DiscoverWorkspaces() error {
	a.printf("%s\n", Section("Discovering workspaces"))

	workspaces, err := DiscoverWorkspaces(a.Paths.WorkspaceStorage)
	if err != nil {
		if IsStoreNotFound(err) {
			a.printf("%s\n\n", Warn("workspace storage not found: "+a.Paths.WorkspaceStorage))
			return nil
		}
		return err
	}

	a.Workspaces = workspaces
	a.printf("found %d workspace(s)\n\n", len(a.Workspaces))

	for _, id := range a.sortedWorkspaceIDs() {
		ws := a.Workspaces[id]
		a.printf("workspace: %s\n", id)
		a.printf("  path: %s\n", ws.FolderPath)
		a.printf("  project: %s\n", ws.Name)
		if ws.DBExists {
			a.printf("  database: present\n\n")
		} else {
			a.printf("  database: absent\n\n")
		}
	}
	return nil
}

// AnalyzeWorkspaceStore scans one workspace's state database and attaches the
// stats to its descriptor. Unknown workspaces and absent databases yield nil.
func (a *Analyzer) AnalyzeWorkspaceStore(id string) (*StoreStats, error) {
	ws, ok := a.Workspaces[id]
	if !ok || !ws.DBExists {
		return nil, nil
	}

	stats, err := AnalyzeStore(ws.DBPath)
	if err != nil {
		return nil, err
	}
	ws.Stats = stats
	return stats, nil
}

// AnalyzeAllWorkspaces runs AnalyzeWorkspaceStore for every discovered
// workspace and prints a per-workspace summary.
func (a *Analyzer) AnalyzeAllWorkspaces() error {
	a.printf("%s\n\n", Section("Analyzing workspace databases"))

	for _, id := range a.sortedWorkspaceIDs() {
		stats, err := a.AnalyzeWorkspaceStore(id)
		if err != nil {
			return err
		}
		if stats == nil {
			continue
		}

		ws := a.Workspaces[id]
		a.printf("workspace: %s (%s)\n", ws.Name, id)
		a.printf("  total records: %d\n", stats.TotalRecords)
		a.printf("  AI prompts: %d bytes\n", stats.AIServicePrompts)
		a.printf("  AI generations: %d bytes\n", stats.AIServiceGenerations)
		a.printf("  composer data: %d bytes\n\n", stats.ComposerData)
	}
	return nil
}

// AnalyzeGlobalTracking scans the global data for daily AI code tracking
// records and prints per-day counters and acceptance rates.
func (a *Analyzer) AnalyzeGlobalTracking() TrackingReport {
	a.printf("%s\n", Section("Analyzing AI code tracking"))

	report := ScanTracking(a.Global)
	a.printf("found %d tracking record(s)\n", len(report.Entries))
	if report.Skipped > 0 {
		a.printf("%s\n", Dim(fmt.Sprintf("skipped %d unparsable record(s)", report.Skipped)))
	}
	a.printf("\n")

	for _, key := range report.SortedKeys() {
		stats := report.Entries[key]
		a.printf("date: %s\n", DateFromKey(key))
		a.printf("  tab suggested: %d lines\n", stats.TabSuggestedLines)
		a.printf("  tab accepted: %d lines\n", stats.TabAcceptedLines)
		a.printf("  composer suggested: %d lines\n", stats.ComposerSuggestedLines)
		a.printf("  composer accepted: %d lines\n", stats.ComposerAcceptedLines)
		if rate, ok := stats.TabAcceptanceRate(); ok {
			a.printf("  tab acceptance: %.2f%%\n", rate)
		}
		if rate, ok := stats.ComposerAcceptanceRate(); ok {
			a.printf("  composer acceptance: %.2f%%\n", rate)
		}
		a.printf("\n")
	}
	return report
}

// GenerateProjectMapping prints the name -> workspace mapping, flags name
// collisions, and renders the suggested projects.json.
func (a *Analyzer) GenerateProjectMapping() error {
	a.printf("%s\n\n", Section("Generating project mapping"))

	mapping := BuildProjectMapping(a.Workspaces)

	a.printf("project name → workspace ID:\n")
	for _, name := range mapping.SortedNames() {
		ids := mapping.Groups[name]
		if len(ids) == 1 {
			a.printf("  %s → %s\n", name, ids[0])
		} else {
			a.printf("  %s → %v (name conflict!)\n", name, ids)
		}
	}

	cfg := mapping.SuggestedConfig(a.Workspaces)
	rendered, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render suggested config: %w", err)
	}

	a.printf("\nsuggested project configuration (projects.json):\n%s\n\n", rendered)
	return nil
}

// PrintRecentProjects renders the first RecentLimit recently opened projects,
// cross-referenced against the discovered workspaces.
func (a *Analyzer) PrintRecentProjects() {
	a.printf("%s\n\n", Section(fmt.Sprintf("Recently opened projects (top %d)", a.RecentLimit)))

	projects, err := RecentProjects(a.Global, a.Workspaces, a.RecentLimit)
	if err != nil {
		a.printf("%s\n\n", Warn("failed to parse recently opened list: "+err.Error()))
		return
	}
	if projects == nil {
		a.printf("%s\n\n", Dim("no recently opened projects record found"))
		return
	}

	for i, project := range projects {
		a.printf("%d. %s\n", i+1, project.Name)
		a.printf("   path: %s\n", project.FolderPath)
		if project.WorkspaceID != "" {
			a.printf("   workspace ID: %s\n", project.WorkspaceID)
		}
		a.printf("\n")
	}
}

// Run executes the full analysis pipeline in fixed order. Steps that hit a
// missing store contribute empty results; any other failure aborts the run.
func (a *Analyzer) Run() error {
	a.printf("%s\n%s\n\n", sectionStyle.Render("Cursor storage analysis"), Dim("============================================================"))

	if err := a.LoadGlobalStore(); err != nil {
		return err
	}
	if err := a.DiscoverWorkspaces(); err != nil {
		return err
	}
	if err := a.AnalyzeAllWorkspaces(); err != nil {
		return err
	}
	a.AnalyzeGlobalTracking()
	if err := a.GenerateProjectMapping(); err != nil {
		return err
	}
	a.PrintRecentProjects()

	a.printf("%s\n%s\n", Dim("============================================================"), Success("analysis complete"))
	return nil
}

func (a *Analyzer) sortedWorkspaceIDs() []string {
	ids := make([]string, 0, len(a.Workspaces))
	for id := range a.Workspaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
