package ports

// Shortcut describes one output artifact pointing at a folder.
type Shortcut struct {
	Name        string // filename without the writer's suffix
	Target      string
	WorkingDir  string
	Description string
}

// ShortcutWriter creates shortcut artifacts and recognizes the ones it owns,
// so the rebuilder can clear stale artifacts without touching unrelated files
// a user may have placed in the output directory.
type ShortcutWriter interface {
	Create(dir string, s Shortcut) error
	Owns(name string) bool
}
