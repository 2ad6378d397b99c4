package domain

import (
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"
)

// MaxFolders is the default capacity of the shortcut mirror.
const MaxFolders = 30

// RecentFolder represents one distinct folder observed in the recent-item
// history. Path is canonical (absolute, cleaned); LastSeen is the most recent
// link-file modification time that mapped to this folder.
type RecentFolder struct {
	Path     string
	LastSeen time.Time
}

// RankedEntry is a RecentFolder annotated with its 1-based rank after
// truncation to capacity.
type RankedEntry struct {
	RecentFolder
	Rank int
}

// CanonicalKey returns the deduplication key for a folder path: cleaned, and
// case-folded on filesystems that compare paths case-insensitively.
func CanonicalKey(path string) string {
	path = filepath.Clean(path)
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.ToLower(path)
	}
	return path
}

// Rank orders folders by LastSeen descending and truncates to at most max
// entries. Ties are broken by ascending path comparison, which keeps the
// ordering deterministic across runs regardless of input order.
func Rank(folders []RecentFolder, max int) []RankedEntry {
	sorted := slices.Clone(folders)
	slices.SortFunc(sorted, func(a, b RecentFolder) int {
		if a.LastSeen.After(b.LastSeen) {
			return -1
		}
		if b.LastSeen.After(a.LastSeen) {
			return 1
		}
		return strings.Compare(a.Path, b.Path)
	})

	if max >= 0 && len(sorted) > max {
		sorted = sorted[:max]
	}

	entries := make([]RankedEntry, len(sorted))
	for i, f := range sorted {
		entries[i] = RankedEntry{RecentFolder: f, Rank: i + 1}
	}
	return entries
}
