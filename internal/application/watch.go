package application

import (
	"context"
	"log/slog"
	"time"

	"recentf/internal/watch"
)

// WatchSession keeps the output directory converged with the source
// directory for the lifetime of a context: one unconditional initial pass,
// then a debounced pass after every burst of source-directory changes.
type WatchSession struct {
	reconciler *Reconciler
	sourceDir  string
	linkSuffix string
	quiet      time.Duration
	log        *slog.Logger
}

// NewWatchSession creates a new WatchSession with the given quiet period.
func NewWatchSession(reconciler *Reconciler, sourceDir, linkSuffix string, quiet time.Duration) *WatchSession {
	return &WatchSession{
		reconciler: reconciler,
		sourceDir:  sourceDir,
		linkSuffix: linkSuffix,
		quiet:      quiet,
		log:        slog.Default(),
	}
}

// Run blocks until ctx is cancelled. An error from the initial pass or from
// the watcher subscription is fatal; errors from debounce-triggered passes
// are logged and discarded, since the next change signal retries on its own
// schedule.
func (s *WatchSession) Run(ctx context.Context) error {
	if _, err := s.reconciler.Run(ctx); err != nil {
		return err
	}

	// Triggered passes must not inherit cancellation mid-pass; shutdown is
	// handled by stopping the debouncer before the watcher goroutine exits.
	passCtx := context.WithoutCancel(ctx)
	deb := watch.NewDebouncer(s.quiet, func() {
		if _, err := s.reconciler.Run(passCtx); err != nil {
			s.log.Debug("watch-triggered pass failed", "error", err)
		}
	})
	defer deb.Stop()

	w, err := watch.New(s.sourceDir, s.linkSuffix, deb.Signal)
	if err != nil {
		return err
	}
	defer w.Close()

	<-ctx.Done()
	return nil
}
