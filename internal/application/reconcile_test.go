package application

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"recentf/internal/adapters/symlink"
)

// TestReconciler_EndToEnd exercises the full pass: two links point at the
// directories A and B, a third points at a file inside B with the latest
// timestamp, so B outranks A with the file link's observation time.
func TestReconciler_EndToEnd(t *testing.T) {
	source := t.TempDir()
	root := t.TempDir()
	out := t.TempDir()

	dirA := filepath.Join(root, "A")
	dirB := filepath.Join(root, "B")
	for _, d := range []string{dirA, dirB} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	doc := filepath.Join(dirB, "doc.txt")
	if err := os.WriteFile(doc, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	writeLink(t, source, "a.lnk", base)                    // 10:00
	writeLink(t, source, "b.lnk", base.Add(5*time.Minute)) // 10:05
	writeLink(t, source, "doc.lnk", base.Add(10*time.Minute))

	resolver := mapResolver(map[string]string{
		"a.lnk":   dirA,
		"b.lnk":   dirB,
		"doc.lnk": doc,
	})

	reconciler := NewReconciler(
		NewCollectCommand(resolver, source, ".lnk"),
		NewRebuildCommand(symlink.NewWriter(), out),
		0,
	)

	stats, err := reconciler.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.Collect.Scanned != 3 || stats.Collect.Collected != 2 {
		t.Errorf("expected scanned=3 collected=2, got %+v", stats.Collect)
	}

	want := []string{"01 - B.lnk", "02 - A.lnk"}
	if got := listNames(t, out); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for name, target := range map[string]string{
		"01 - B.lnk": dirB,
		"02 - A.lnk": dirA,
	} {
		got, err := os.Readlink(filepath.Join(out, name))
		if err != nil {
			t.Fatal(err)
		}
		if got != target {
			t.Errorf("%s: expected target %s, got %s", name, target, got)
		}
	}
}

func TestReconciler_IdempotentAcrossRuns(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	out := t.TempDir()
	writeLink(t, source, "one.lnk", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	reconciler := NewReconciler(
		NewCollectCommand(mapResolver(map[string]string{"one.lnk": target}), source, ".lnk"),
		NewRebuildCommand(symlink.NewWriter(), out),
		0,
	)

	if _, err := reconciler.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := listNames(t, out)
	if _, err := reconciler.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	second := listNames(t, out)

	if !slices.Equal(first, second) {
		t.Errorf("expected identical output across runs, got %v then %v", first, second)
	}
}
