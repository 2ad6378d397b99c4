package application

// SkipReason classifies why a single link file was excluded from a pass.
type SkipReason string

const (
	SkipUnresolvable SkipReason = "unresolvable" // resolver failed on the link
	SkipDangling     SkipReason = "dangling"     // target no longer exists
	SkipNoParent     SkipReason = "no-parent"    // file target whose parent is gone
)

// CollectStats records the outcome of one collection over the source
// directory. Skips are counted per reason rather than discarded so that the
// best-effort policy stays observable.
type CollectStats struct {
	Scanned   int
	Collected int
	Skipped   map[SkipReason]int
}

func (s *CollectStats) skip(r SkipReason) {
	if s.Skipped == nil {
		s.Skipped = make(map[SkipReason]int)
	}
	s.Skipped[r]++
}

// SkipCount returns the total number of skipped link files.
func (s CollectStats) SkipCount() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// RebuildStats records the outcome of one output-directory rebuild.
type RebuildStats struct {
	Removed        int
	RemoveFailures int
	Created        int
	CreateFailures int
}

// PassStats aggregates one full reconciliation pass.
type PassStats struct {
	Collect CollectStats
	Ranked  int
	Rebuild RebuildStats
}
