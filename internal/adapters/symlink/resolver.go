package symlink

import (
	"os"
	"path/filepath"
)

// Resolver implements ports.LinkResolver for symlink-style recent-item
// files: the link's own target is read without following chains, and
// relative targets resolve against the link's directory.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the link's target path, absolute and cleaned.
func (r *Resolver) Resolve(linkPath string) (string, error) {
	target, err := os.Readlink(linkPath)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return filepath.Clean(target), nil
}
