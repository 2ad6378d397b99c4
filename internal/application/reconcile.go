package application

import (
	"context"
	"log/slog"

	"recentf/internal/domain"
)

// Reconciler runs one full reconciliation pass: collect the recent folders,
// rank them by recency, and rebuild the output directory. Passes are never
// run concurrently with each other; the debounce discipline in watch mode
// guarantees at most one triggered pass at a time.
type Reconciler struct {
	collect *CollectCommand
	rebuild *RebuildCommand
	max     int
	log     *slog.Logger
}

// NewReconciler creates a Reconciler keeping at most max shortcuts.
func NewReconciler(collect *CollectCommand, rebuild *RebuildCommand, max int) *Reconciler {
	if max <= 0 {
		max = domain.MaxFolders
	}
	return &Reconciler{
		collect: collect,
		rebuild: rebuild,
		max:     max,
		log:     slog.Default(),
	}
}

// Run executes one pass and returns its aggregated statistics.
func (r *Reconciler) Run(ctx context.Context) (PassStats, error) {
	folders, cs := r.collect.Execute(ctx)
	ranked := domain.Rank(folders, r.max)
	rs, err := r.rebuild.Execute(ctx, ranked)

	stats := PassStats{Collect: cs, Ranked: len(ranked), Rebuild: rs}
	r.log.Debug("reconciliation pass",
		"scanned", cs.Scanned,
		"collected", cs.Collected,
		"skipped", cs.SkipCount(),
		"ranked", len(ranked),
		"removed", rs.Removed,
		"created", rs.Created,
		"createFailures", rs.CreateFailures,
	)
	return stats, err
}
