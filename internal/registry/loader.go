package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"eventhost/internal/common/fsutil"
)

// RosterExt is the file extension of NPC roster entries.
const RosterExt = ".npc"

// Entry is one NPC to spawn at startup.
type Entry struct {
	Name string
	Path string
}

// Scanner builds a roster from a directory.
type Scanner interface {
	Scan(dir string) ([]Entry, error)
}

// rosterScanner treats every *.npc file as one NPC named after the file.
type rosterScanner struct{}

// NewRosterScanner returns the default Scanner.
func NewRosterScanner() Scanner { return rosterScanner{} }

func (rosterScanner) Scan(dir string) ([]Entry, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	names, err := fsutil.FilesWithExt(abs, RosterExt)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		name := strings.TrimSpace(strings.TrimSuffix(n, filepath.Ext(n)))
		if name == "" {
			continue
		}
		out = append(out, Entry{Name: name, Path: filepath.Join(abs, n)})
	}
	return out, nil
}

// LoadDir scans dir with the default Scanner.
func LoadDir(dir string) ([]Entry, error) {
	return NewRosterScanner().Scan(dir)
}
