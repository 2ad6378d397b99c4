package watch

import (
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher subscribes to filesystem notifications for link files directly
// inside the source directory (non-recursive) and invokes signal on every
// relevant create/write/rename/remove event. It does not decide when to
// reconcile; that is the Debouncer's job.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// New starts watching sourceDir and reports changes to files carrying
// linkSuffix via signal. The caller must Close the watcher to release the
// subscription.
func New(sourceDir, linkSuffix string, signal func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(sourceDir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw}
	go w.loop(linkSuffix, signal)
	return w, nil
}

func (w *Watcher) loop(linkSuffix string, signal func()) {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !hasLinkSuffix(event.Name, linkSuffix) {
				continue
			}
			signal()
		case _, ok := <-w.fsw.Errors:
			// Watch errors are not actionable here; the next event or the
			// next session restart recovers.
			if !ok {
				return
			}
		}
	}
}

func hasLinkSuffix(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix))
}

// Close releases the notification subscription and stops the event loop.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
