package symlink

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"recentf/internal/ports"
)

// ArtifactSuffix is appended to every shortcut artifact this writer creates.
const ArtifactSuffix = ".lnk"

// artifactName matches the rank-prefixed filenames this writer generates,
// e.g. "01 - Projects.lnk".
var artifactName = regexp.MustCompile(`^[0-9]{2,} - `)

// Writer implements ports.ShortcutWriter with plain symlinks. A symlink
// cannot encode the shortcut's working directory or description; both are
// implied by the target folder itself.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Create writes the shortcut as a symlink inside dir, replacing any existing
// artifact of the same name.
func (w *Writer) Create(dir string, s ports.Shortcut) error {
	path := filepath.Join(dir, s.Name+ArtifactSuffix)
	_ = os.Remove(path)
	return os.Symlink(s.Target, path)
}

// Owns reports whether name looks like an artifact this writer generated.
func (w *Writer) Owns(name string) bool {
	return strings.HasSuffix(name, ArtifactSuffix) && artifactName.MatchString(name)
}
