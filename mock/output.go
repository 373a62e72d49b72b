package mock

import "github.com/fwojciec/echoquill"

// Compile-time interface verification.
var (
	_ echoquill.Clipboard = (*Clipboard)(nil)
	_ echoquill.Exporter  = (*Exporter)(nil)
)

// Clipboard is a mock implementation of echoquill.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

// Exporter is a mock implementation of echoquill.Exporter.
type Exporter struct {
	ExportFn func(a echoquill.Artifact) (string, error)
}

func (e *Exporter) Export(a echoquill.Artifact) (string, error) {
	return e.ExportFn(a)
}
