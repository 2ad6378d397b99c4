package domain

import (
	"path/filepath"
	"strings"
)

const (
	// MaxNameLength bounds the sanitized display name.
	MaxNameLength = 120
	// PlaceholderName is used when sanitization leaves nothing usable.
	PlaceholderName = "Folder"
)

// invalidNameChars are the characters rejected by common filesystems.
const invalidNameChars = `<>:"/\|?*`

// DisplayName derives a friendly name from a folder path: the leaf name for
// ordinary folders, a drive label for filesystem roots, or the raw path when
// nothing better can be extracted.
func DisplayName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	switch base {
	case string(filepath.Separator):
		if vol := filepath.VolumeName(path); vol != "" {
			return "Drive " + strings.TrimSuffix(vol, ":")
		}
		return "Root"
	case ".", "":
		return path
	}
	return base
}

// SanitizeName rewrites name into a valid filename component: every
// filesystem-invalid character becomes an underscore, surrounding whitespace
// is trimmed, and the result is truncated to at most MaxNameLength runes.
// An empty result falls back to PlaceholderName.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(invalidNameChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	s := strings.TrimSpace(b.String())
	if runes := []rune(s); len(runes) > MaxNameLength {
		s = string(runes[:MaxNameLength])
	}
	if s == "" {
		return PlaceholderName
	}
	return s
}
