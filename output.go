package echoquill

import "log/slog"

// Artifact naming for exported stories.
const (
	ExportFilename = "story.txt"
	ExportMIMEType = "text/plain"
)

// EmptyStoryPlaceholder is displayed in place of a story with no content.
const EmptyStoryPlaceholder = "No story generated. Please try again."

// Artifact is a downloadable file produced from a story.
type Artifact struct {
	Name     string
	MIMEType string
	Content  []byte
}

// NewArtifact returns the plain-text artifact for story. Content is the story bytes unchanged.
func NewArtifact(story string) Artifact {
	return Artifact{
		Name:     ExportFilename,
		MIMEType: ExportMIMEType,
		Content:  []byte(story),
	}
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// Exporter persists an artifact where the user can pick it up.
type Exporter interface {
	// Export writes the artifact and returns its location.
	Export(a Artifact) (string, error)
}

// Presenter offers copy and export actions for a settled story.
type Presenter struct {
	clipboard Clipboard
	exporter  Exporter
	logger    *slog.Logger
}

// NewPresenter creates a Presenter. A nil logger uses slog.Default.
func NewPresenter(clipboard Clipboard, exporter Exporter, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Presenter{
		clipboard: clipboard,
		exporter:  exporter,
		logger:    logger,
	}
}

// Display returns the text to render for story.
func (p *Presenter) Display(story string) string {
	if story == "" {
		return EmptyStoryPlaceholder
	}
	return story
}

// Copy places the full story on the clipboard and reports whether it succeeded.
// Failures are logged and otherwise ignored.
func (p *Presenter) Copy(story string) bool {
	if p.clipboard == nil {
		return false
	}
	if err := p.clipboard.Copy(story); err != nil {
		p.logger.Warn("copy to clipboard failed", "error", err)
		return false
	}
	return true
}

// Export writes the story as a plain-text artifact and returns where it was written.
func (p *Presenter) Export(story string) (string, error) {
	path, err := p.exporter.Export(NewArtifact(story))
	if err != nil {
		p.logger.Warn("export failed", "error", err)
		return "", err
	}
	p.logger.Info("story exported", "path", path, "bytes", len(story))
	return path, nil
}
