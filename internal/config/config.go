package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"recentf/internal/domain"
	"recentf/internal/watch"
)

// OutputDirName is the shortcut mirror's directory name under the user's
// profile.
const OutputDirName = "Recent Folders"

// DefaultLinkSuffix is the filename suffix of recent-item link files.
const DefaultLinkSuffix = ".lnk"

// SourceDir returns the recent-items directory from the RECENTF_SOURCE env
// var, falling back to the platform's per-user location.
func SourceDir() string {
	if env := os.Getenv("RECENTF_SOURCE"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Microsoft", "Windows", "Recent")
		}
		return filepath.Join(home, "AppData", "Roaming", "Microsoft", "Windows", "Recent")
	default:
		return filepath.Join(home, ".local", "share", "RecentDocuments")
	}
}

// OutputDir returns the mirror directory from the RECENTF_OUTPUT env var,
// falling back to OutputDirName under the user's home.
func OutputDir() string {
	if env := os.Getenv("RECENTF_OUTPUT"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, OutputDirName)
}

// MaxFolders returns the mirror capacity from the RECENTF_MAX env var,
// falling back to the domain default.
func MaxFolders() int {
	if env := os.Getenv("RECENTF_MAX"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	return domain.MaxFolders
}

// QuietPeriod returns the debounce quiet period from the RECENTF_QUIET env
// var (a Go duration string), falling back to the watch default.
func QuietPeriod() time.Duration {
	if env := os.Getenv("RECENTF_QUIET"); env != "" {
		if d, err := time.ParseDuration(env); err == nil && d > 0 {
			return d
		}
	}
	return watch.DefaultQuietPeriod
}
