package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"recentf/internal/domain"
	"recentf/internal/ports"
)

// RebuildCommand clears the output directory's shortcut artifacts and
// recreates them in rank order. The directory is always fully rewritten,
// never incrementally patched, so a transient failure self-heals on the next
// successful pass.
type RebuildCommand struct {
	writer    ports.ShortcutWriter
	outputDir string
}

// NewRebuildCommand creates a new RebuildCommand.
func NewRebuildCommand(writer ports.ShortcutWriter, outputDir string) *RebuildCommand {
	return &RebuildCommand{writer: writer, outputDir: outputDir}
}

// Execute rebuilds the output directory from the ranked entries. Only
// artifacts the writer owns are removed; unrelated files are left alone.
// Per-artifact delete and create failures are counted and skipped. The
// returned error is non-nil only when the output directory itself cannot be
// read, which violates the precondition that it exists.
func (r *RebuildCommand) Execute(ctx context.Context, entries []domain.RankedEntry) (RebuildStats, error) {
	var stats RebuildStats

	dirents, err := os.ReadDir(r.outputDir)
	if err != nil {
		return stats, fmt.Errorf("failed to read output directory: %w", err)
	}
	for _, de := range dirents {
		if de.IsDir() || !r.writer.Owns(de.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(r.outputDir, de.Name())); err != nil {
			stats.RemoveFailures++
			continue
		}
		stats.Removed++
	}

	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}
		name := fmt.Sprintf("%02d - %s", e.Rank, domain.SanitizeName(domain.DisplayName(e.Path)))
		s := ports.Shortcut{
			Name:        name,
			Target:      e.Path,
			WorkingDir:  e.Path,
			Description: fmt.Sprintf("Recently used folder %s", e.Path),
		}
		if err := r.writer.Create(r.outputDir, s); err != nil {
			stats.CreateFailures++
			continue
		}
		stats.Created++
	}
	return stats, nil
}
