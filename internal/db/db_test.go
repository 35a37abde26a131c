package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenAppliesPragmas(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "pragmas.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	var foreignKeys int
	if err := database.QueryRow(`PRAGMA foreign_keys`).Scan(&foreignKeys); err != nil {
		t.Fatalf("read foreign_keys: %v", err)
	}
	if foreignKeys != 1 {
		t.Fatalf("foreign_keys = %d, want 1", foreignKeys)
	}

	var mode string
	if err := database.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatalf("read journal_mode: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
}

func TestDSNKeepsExistingQuery(t *testing.T) {
	got := dsn("file:test.db?cache=shared")
	if !strings.HasPrefix(got, "file:test.db?cache=shared&_pragma=") {
		t.Fatalf("dsn = %q", got)
	}
}
