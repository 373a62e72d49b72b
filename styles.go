package echoquill

// Palette holds the colors used to render the interface.
// Colors are hex strings in "#RRGGBB" format. Empty strings mean the terminal default.
type Palette struct {
	Background string
	Foreground string

	Title  string // Application title
	Accent string // Focused widgets and the generate button
	Muted  string // Help text and unfocused labels
	Border string // Panel borders

	Success string // Status messages for completed actions
	Error   string // Validation and generation errors
}

// Theme provides a palette for rendering.
// Different implementations provide light and dark variants.
type Theme interface {
	Name() string
	Palette() Palette
}
