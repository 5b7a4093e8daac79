package internal

import (
	"encoding/json"
	"sort"
	"strings"
)

// DailyStatsPrefix identifies date-stamped AI code tracking records in the
// global store, e.g. aiCodeTracking.dailyStats.2024-11-03.
const DailyStatsPrefix = "aiCodeTracking.dailyStats"

// DailyStats is one day of AI code tracking counters.
type DailyStats struct {
	TabSuggestedLines      int `json:"tabSuggestedLines"`
	TabAcceptedLines       int `json:"tabAcceptedLines"`
	ComposerSuggestedLines int `json:"composerSuggestedLines"`
	ComposerAcceptedLines  int `json:"composerAcceptedLines"`
}

// TabAcceptanceRate returns the tab acceptance percentage. The rate is only
// defined when lines were suggested; ok is false otherwise.
func (d DailyStats) TabAcceptanceRate() (rate float64, ok bool) {
	if d.TabSuggestedLines <= 0 {
		return 0, false
	}
	return float64(d.TabAcceptedLines) / float64(d.TabSuggestedLines) * 100, true
}

// ComposerAcceptanceRate returns the composer acceptance percentage. The rate
// is only defined when lines were suggested; ok is false otherwise.
func (d DailyStats) ComposerAcceptanceRate() (rate float64, ok bool) {
	if d.ComposerSuggestedLines <= 0 {
		return 0, false
	}
	return float64(d.ComposerAcceptedLines) / float64(d.ComposerSuggestedLines) * 100, true
}

// TrackingReport holds the parsed daily tracking records keyed by store key.
type TrackingReport struct {
	Entries map[string]DailyStats
	Skipped int // records under the prefix that failed to parse
}

// ScanTracking extracts daily tracking records from the global data map.
// Records that fail to parse are skipped and counted, never escalated.
func ScanTracking(global map[string]string) TrackingReport {
	report := TrackingReport{Entries: make(map[string]DailyStats)}

	for key, value := range global {
		if !strings.HasPrefix(key, DailyStatsPrefix) {
			continue
		}
		var stats DailyStats
		if err := json.Unmarshal([]byte(value), &stats); err != nil {
			report.Skipped++
			continue
		}
		report.Entries[key] = stats
	}

	return report
}

// SortedKeys returns the entry keys in ascending (chronological) order.
func (r TrackingReport) SortedKeys() []string {
	keys := make([]string, 0, len(r.Entries))
	for key := range r.Entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DateFromKey extracts the date stamp from a daily-stats key.
func DateFromKey(key string) string {
	parts := strings.Split(key, ".")
	return parts[len(parts)-1]
}
