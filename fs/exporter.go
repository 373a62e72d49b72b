package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/echoquill"
)

// Compile-time interface verification.
var _ echoquill.Exporter = (*Exporter)(nil)

// Exporter writes artifacts into a directory.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter that writes into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export writes the artifact content to dir/<name>, creating dir if needed.
// An existing file with the same name is replaced.
func (e *Exporter) Export(a echoquill.Artifact) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", e.dir, err)
	}

	path := filepath.Join(e.dir, filepath.Base(a.Name))
	if err := os.WriteFile(path, a.Content, 0o644); err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
