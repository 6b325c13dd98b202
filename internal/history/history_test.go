package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordRunAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	ledger, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer ledger.Close()

	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	lines := []string{"id: (A: U0) -> A -> A", "const: (A: U0) -> (B: U0) -> A -> B -> A"}
	if err := ledger.RecordRun("example.dtl", lines, now); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	entries, err := ledger.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != len(lines) {
		t.Fatalf("got %d entries, want %d", len(entries), len(lines))
	}
	// newest first: the second RecordRun'd line comes back before the first.
	if entries[0].Summary != lines[1] || entries[1].Summary != lines[0] {
		t.Fatalf("unexpected order: %+v", entries)
	}
	for _, e := range entries {
		if e.FilePath != "example.dtl" {
			t.Errorf("FilePath = %q, want example.dtl", e.FilePath)
		}
		if e.RunID == "" {
			t.Errorf("RunID is empty")
		}
		if !e.CheckedAt.Equal(now) {
			t.Errorf("CheckedAt = %v, want %v", e.CheckedAt, now)
		}
	}
}

func TestRecentLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ledger, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer ledger.Close()

	now := time.Now()
	for i := 0; i < 5; i++ {
		if err := ledger.RecordRun("a.dtl", []string{"x: U0"}, now); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	entries, err := ledger.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}
