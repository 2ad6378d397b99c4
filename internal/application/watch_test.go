package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"recentf/internal/adapters/symlink"
)

// TestWatchSession_RebuildsAfterChange drives the real watcher and debouncer:
// a link file created after startup must appear as a shortcut once the quiet
// period elapses, without restarting the session.
func TestWatchSession_RebuildsAfterChange(t *testing.T) {
	source := t.TempDir()
	out := t.TempDir()
	target := t.TempDir()

	reconciler := NewReconciler(
		NewCollectCommand(symlink.NewResolver(), source, ".lnk"),
		NewRebuildCommand(symlink.NewWriter(), out),
		0,
	)
	session := NewWatchSession(reconciler, source, ".lnk", 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	// Give the watcher a moment to subscribe before producing events.
	time.Sleep(200 * time.Millisecond)

	if err := os.Symlink(target, filepath.Join(source, "new.lnk")); err != nil {
		t.Fatal(err)
	}

	wantName := "01 - " + filepath.Base(target) + ".lnk"
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Lstat(filepath.Join(out, wantName)); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("shortcut %s never appeared in %s", wantName, out)
		}
		time.Sleep(25 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected session error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after cancellation")
	}
}

func TestWatchSession_InitialPassFailureIsFatal(t *testing.T) {
	source := t.TempDir()
	missingOut := filepath.Join(t.TempDir(), "missing")

	reconciler := NewReconciler(
		NewCollectCommand(symlink.NewResolver(), source, ".lnk"),
		NewRebuildCommand(symlink.NewWriter(), missingOut),
		0,
	)
	session := NewWatchSession(reconciler, source, ".lnk", 50*time.Millisecond)

	if err := session.Run(context.Background()); err == nil {
		t.Error("expected the initial pass to fail for a missing output directory")
	}
}
