package freedesktop

import (
	"fmt"
	"os"
	"path/filepath"
)

// markerName is the hidden per-directory config file freedesktop file
// managers read for display hints.
const markerName = ".directory"

// DefaultIcon is the themed icon name applied to the output directory.
const DefaultIcon = "folder-recent"

// Decorator implements ports.IconDecorator by writing a .directory marker
// with an Icon entry. Purely cosmetic; callers ignore failures.
type Decorator struct {
	Icon string
}

// NewDecorator creates a Decorator using DefaultIcon.
func NewDecorator() *Decorator {
	return &Decorator{Icon: DefaultIcon}
}

// Decorate writes the icon marker into dir.
func (d *Decorator) Decorate(dir string) error {
	content := fmt.Sprintf("[Desktop Entry]\nIcon=%s\n", d.Icon)
	return os.WriteFile(filepath.Join(dir, markerName), []byte(content), 0o644)
}
