package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mtang/cursor-insight/testutil"
)

func TestAnalyzer_Run_EmptyStorage(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	var out bytes.Buffer

	analyzer := NewAnalyzer(NewStoragePaths(tmpDir), &out)
	if err := analyzer.Run(); err != nil {
		t.Fatalf("Run() error = %v, missing stores must be non-fatal", err)
	}

	if len(analyzer.Global) != 0 {
		t.Errorf("Global has %d records, want 0", len(analyzer.Global))
	}
	if len(analyzer.Workspaces) != 0 {
		t.Errorf("Workspaces has %d entries, want 0", len(analyzer.Workspaces))
	}

	report := out.String()
	if !strings.Contains(report, "global database not found") {
		t.Error("report should mention the missing global database")
	}
	if !strings.Contains(report, "workspace storage not found") {
		t.Error("report should mention the missing workspace storage")
	}
	if !strings.Contains(report, "found 0 tracking record(s)") {
		t.Error("tracking step should report zero records")
	}
	if !strings.Contains(report, "no recently opened projects record found") {
		t.Error("recent step should report the missing record")
	}
	if !strings.Contains(report, "analysis complete") {
		t.Error("report should run to completion")
	}
}

func TestAnalyzer_Run_FullScenario(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)

	testutil.CreateGlobalStoreFixture(t, tmpDir, testutil.TextRecords(map[string]string{
		DailyStatsPrefix + ".2024-11-01": `{"tabSuggestedLines":100,"tabAcceptedLines":40}`,
		DailyStatsPrefix + ".2024-11-02": `broken`,
		RecentlyOpenedKey:                `{"entries":[{"folderUri":"file:///home/u/proj"}]}`,
	}))
	testutil.CreateWorkspaceFixture(t, tmpDir, "hash-proj", "file:///home/u/proj",
		testutil.TextRecords(map[string]string{
			KeyAIServicePrompts: strings.Repeat("p", 37),
			KeyComposerData:     strings.Repeat("c", 12),
		}))

	var out bytes.Buffer
	analyzer := NewAnalyzer(NewStoragePaths(tmpDir), &out)
	if err := analyzer.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	ws := analyzer.Workspaces["hash-proj"]
	if ws == nil {
		t.Fatal("workspace hash-proj not discovered")
	}
	if ws.Stats == nil {
		t.Fatal("workspace stats not attached")
	}
	if ws.Stats.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", ws.Stats.TotalRecords)
	}
	if ws.Stats.AIServicePrompts != 37 {
		t.Errorf("AIServicePrompts = %d, want 37", ws.Stats.AIServicePrompts)
	}
	if ws.Stats.ComposerData != 12 {
		t.Errorf("ComposerData = %d, want 12", ws.Stats.ComposerData)
	}
	if ws.Stats.AIServiceGenerations != 0 {
		t.Errorf("AIServiceGenerations = %d, want 0", ws.Stats.AIServiceGenerations)
	}

	report := out.String()
	if !strings.Contains(report, "tab acceptance: 40.00%") {
		t.Error("report should include the tab acceptance rate")
	}
	if !strings.Contains(report, "skipped 1 unparsable record(s)") {
		t.Error("report should count the skipped tracking record")
	}
	if !strings.Contains(report, `"workspace_id": "hash-proj"`) {
		t.Error("suggested config should reference the workspace")
	}
	if !strings.Contains(report, "workspace ID: hash-proj") {
		t.Error("recent project should cross-reference the workspace")
	}
}

func TestAnalyzer_GenerateProjectMapping_Collision(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	testutil.CreateWorkspaceFixture(t, tmpDir, "hash-one", "file:///home/u/work/demo", nil)
	testutil.CreateWorkspaceFixture(t, tmpDir, "hash-two", "file:///home/u/play/demo", nil)

	var out bytes.Buffer
	analyzer := NewAnalyzer(NewStoragePaths(tmpDir), &out)
	if err := analyzer.DiscoverWorkspaces(); err != nil {
		t.Fatalf("DiscoverWorkspaces() error = %v", err)
	}
	if err := analyzer.GenerateProjectMapping(); err != nil {
		t.Fatalf("GenerateProjectMapping() error = %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "name conflict!") {
		t.Error("report should flag the name collision")
	}
	if !strings.Contains(report, `"demo-1"`) || !strings.Contains(report, `"demo-2"`) {
		t.Error("suggested config should contain suffixed display names")
	}
}

func TestAnalyzer_AnalyzeWorkspaceStore_Unknown(t *testing.T) {
	tmpDir := testutil.CreateTempDir(t)
	analyzer := NewAnalyzer(NewStoragePaths(tmpDir), &bytes.Buffer{})

	stats, err := analyzer.AnalyzeWorkspaceStore("nope")
	if err != nil {
		t.Fatalf("AnalyzeWorkspaceStore() error = %v", err)
	}
	if stats != nil {
		t.Error("AnalyzeWorkspaceStore() should be a no-op for unknown workspaces")
	}
}
