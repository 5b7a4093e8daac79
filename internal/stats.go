package internal

import "os"

// Well-known workspace store keys surfaced individually in the report.
const (
	KeyAIServicePrompts     = "aiService.prompts"
	KeyAIServiceGenerations = "aiService.generations"
	KeyComposerData         = "composer.composerData"
)

// StoreStats summarizes one workspace state database.
type StoreStats struct {
	TotalRecords         int
	AIServicePrompts     int // byte length of aiService.prompts
	AIServiceGenerations int // byte length of aiService.generations
	ComposerData         int // byte length of composer.composerData
	KeySizes             map[string]int
}

// AnalyzeStore scans a workspace state database and accumulates record
// counts and per-key byte sizes. A missing database returns (nil, nil):
// the workspace simply has no stats.
func AnalyzeStore(dbPath string) (*StoreStats, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil
	}

	db, err := OpenStore(dbPath)
	if err != nil {
		return nil, &StorageError{Path: dbPath, Op: "open", Err: err}
	}
	defer func() { _ = db.Close() }()

	records, err := ScanItemTable(db)
	if err != nil {
		return nil, &StorageError{Path: dbPath, Op: "read", Err: err}
	}

	stats := &StoreStats{KeySizes: make(map[string]int)}
	for _, rec := range records {
		stats.TotalRecords++
		if rec.Value != nil {
			stats.KeySizes[rec.Key] = len(rec.Value)
		}

		switch rec.Key {
		case KeyAIServicePrompts:
			stats.AIServicePrompts = len(rec.Value)
		case KeyAIServiceGenerations:
			stats.AIServiceGenerations = len(rec.Value)
		case KeyComposerData:
			stats.ComposerData = len(rec.Value)
		}
	}

	return stats, nil
}
