package internal

import (
	"fmt"
	"testing"
)

func TestScanTracking(t *testing.T) {
	global := map[string]string{
		DailyStatsPrefix + ".2024-11-01": `{"tabSuggestedLines":100,"tabAcceptedLines":40,"composerSuggestedLines":50,"composerAcceptedLines":25}`,
		DailyStatsPrefix + ".2024-11-02": `{"tabSuggestedLines":0,"tabAcceptedLines":0,"composerSuggestedLines":10,"composerAcceptedLines":5}`,
		DailyStatsPrefix + ".2024-11-03": `not json`,
		"history.recentlyOpenedPathsList": `{"entries":[]}`,
		"some.other.key":                  "ignored",
	}

	report := ScanTracking(global)

	if len(report.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(report.Entries))
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}

	day1 := report.Entries[DailyStatsPrefix+".2024-11-01"]
	if day1.TabSuggestedLines != 100 || day1.TabAcceptedLines != 40 {
		t.Errorf("day1 tab counters = %d/%d", day1.TabAcceptedLines, day1.TabSuggestedLines)
	}

	keys := report.SortedKeys()
	if len(keys) != 2 || keys[0] != DailyStatsPrefix+".2024-11-01" {
		t.Errorf("SortedKeys() = %v", keys)
	}
}

func TestScanTracking_WellFormedCount(t *testing.T) {
	global := make(map[string]string)
	for i := 0; i < 7; i++ {
		key := fmt.Sprintf("%s.2024-10-0%d", DailyStatsPrefix, i+1)
		global[key] = `{"tabSuggestedLines":1,"tabAcceptedLines":1}`
	}

	report := ScanTracking(global)
	if len(report.Entries) != 7 {
		t.Errorf("Entries = %d, want 7", len(report.Entries))
	}
	if report.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", report.Skipped)
	}
}

func TestAcceptanceRates(t *testing.T) {
	tests := []struct {
		name     string
		stats    DailyStats
		wantTab  float64
		tabOK    bool
		wantComp float64
		compOK   bool
	}{
		{
			name:     "both defined",
			stats:    DailyStats{TabSuggestedLines: 100, TabAcceptedLines: 40, ComposerSuggestedLines: 50, ComposerAcceptedLines: 25},
			wantTab:  40,
			tabOK:    true,
			wantComp: 50,
			compOK:   true,
		},
		{
			name:   "zero denominators omit the rate",
			stats:  DailyStats{TabAcceptedLines: 10, ComposerAcceptedLines: 5},
			tabOK:  false,
			compOK: false,
		},
		{
			name:    "tab only",
			stats:   DailyStats{TabSuggestedLines: 4, TabAcceptedLines: 1},
			wantTab: 25,
			tabOK:   true,
			compOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := tt.stats.TabAcceptanceRate()
			if ok != tt.tabOK {
				t.Errorf("TabAcceptanceRate() ok = %v, want %v", ok, tt.tabOK)
			}
			if ok && rate != tt.wantTab {
				t.Errorf("TabAcceptanceRate() = %v, want %v", rate, tt.wantTab)
			}

			rate, ok = tt.stats.ComposerAcceptanceRate()
			if ok != tt.compOK {
				t.Errorf("ComposerAcceptanceRate() ok = %v, want %v", ok, tt.compOK)
			}
			if ok && rate != tt.wantComp {
				t.Errorf("ComposerAcceptanceRate() = %v, want %v", rate, tt.wantComp)
			}
		})
	}
}

func TestDateFromKey(t *testing.T) {
	if got := DateFromKey(DailyStatsPrefix + ".2024-11-03"); got != "2024-11-03" {
		t.Errorf("DateFromKey() = %q, want 2024-11-03", got)
	}
}
