package application

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"recentf/internal/domain"
	"recentf/internal/ports"
)

// CollectCommand scans the source directory's link files and derives the set
// of distinct recent folders, keyed by canonical path with the most recent
// observation time winning on collision.
type CollectCommand struct {
	resolver   ports.LinkResolver
	sourceDir  string
	linkSuffix string
}

// NewCollectCommand creates a new CollectCommand.
func NewCollectCommand(resolver ports.LinkResolver, sourceDir, linkSuffix string) *CollectCommand {
	return &CollectCommand{
		resolver:   resolver,
		sourceDir:  sourceDir,
		linkSuffix: linkSuffix,
	}
}

// Execute performs one read-only collection. A missing source directory
// yields an empty result, not an error: the mirror must tolerate an empty
// history. Individual link failures are counted and skipped, never fatal.
func (c *CollectCommand) Execute(ctx context.Context) ([]domain.RecentFolder, CollectStats) {
	var stats CollectStats

	dirents, err := os.ReadDir(c.sourceDir)
	if err != nil {
		return nil, stats
	}

	seen := make(map[string]domain.RecentFolder)
	for _, de := range dirents {
		if ctx.Err() != nil {
			break
		}
		if de.IsDir() || !isLinkFile(de.Name(), c.linkSuffix) {
			continue
		}
		stats.Scanned++

		info, err := de.Info()
		if err != nil {
			stats.skip(SkipUnresolvable)
			continue
		}
		observed := info.ModTime().UTC()

		target, err := c.resolver.Resolve(filepath.Join(c.sourceDir, de.Name()))
		if err != nil {
			stats.skip(SkipUnresolvable)
			continue
		}

		folder, reason := folderFor(target)
		if reason != "" {
			stats.skip(reason)
			continue
		}

		key := domain.CanonicalKey(folder)
		if prev, ok := seen[key]; !ok {
			seen[key] = domain.RecentFolder{Path: filepath.Clean(folder), LastSeen: observed}
		} else if observed.After(prev.LastSeen) {
			prev.LastSeen = observed
			seen[key] = prev
		}
	}

	folders := make([]domain.RecentFolder, 0, len(seen))
	for _, f := range seen {
		folders = append(folders, f)
	}
	stats.Collected = len(folders)
	return folders, stats
}

// folderFor maps a link target to its canonical folder: the target itself if
// it is a directory, or the target's parent if the target is a file whose
// parent still exists. Anything else is stale.
func folderFor(target string) (string, SkipReason) {
	info, err := os.Stat(target)
	if err != nil {
		return "", SkipDangling
	}
	if info.IsDir() {
		return target, ""
	}

	parent := filepath.Dir(target)
	pinfo, err := os.Stat(parent)
	if err != nil || !pinfo.IsDir() {
		return "", SkipNoParent
	}
	return parent, ""
}

func isLinkFile(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix))
}
