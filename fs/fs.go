// Package fs writes exported stories and application files to the local filesystem.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultExportDir returns the directory exported stories are written to.
// Uses XDG_DOWNLOAD_DIR if set, otherwise ~/Downloads when it exists,
// or the current working directory.
func DefaultExportDir() string {
	if xdg := os.Getenv("XDG_DOWNLOAD_DIR"); xdg != "" {
		return xdg
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		downloads := filepath.Join(home, "Downloads")
		if info, err := os.Stat(downloads); err == nil && info.IsDir() {
			return downloads
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// DefaultStateDir returns the directory for echoquill's own files such as logs.
// Uses XDG_STATE_HOME if set, otherwise ~/.local/state/echoquill,
// or system temp directory if home is unavailable.
func DefaultStateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "echoquill")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "echoquill")
	}
	return filepath.Join(home, ".local", "state", "echoquill")
}
