package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRosterScanner_FiltersAndOrders(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"guard.npc",
		"Baker.NPC", // case-insensitive
		"notes.txt",
		".npc", // no name
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(""), 0o644); err != nil {
			t.Fatalf("write temp file: %v", err)
		}
	}
	entries, err := NewRosterScanner().Scan(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[0].Name != "Baker" || entries[1].Name != "guard" {
		t.Fatalf("unexpected order/names: %+v", entries)
	}
	if entries[1].Path != filepath.Join(dir, "guard.npc") {
		t.Fatalf("path=%s", entries[1].Path)
	}
}

func TestRosterScanner_ExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	sub := filepath.Join(home, "roster")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "x.npc"), []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := NewRosterScanner().Scan("~/roster")
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "x" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestLoadDirWrapper(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "m.npc"), []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "m" {
		t.Fatalf("unexpected: %+v", entries)
	}
	if _, err := LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
