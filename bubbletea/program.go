package bubbletea

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/echoquill"
)

// Compile-time interface verification.
var _ echoquill.Frontend = (*UI)(nil)

// UI implements echoquill.Frontend as a full-screen terminal program.
type UI struct {
	input     io.Reader
	output    io.Writer
	modelOpts []ModelOption
}

// UIOption configures a UI.
type UIOption func(*UI)

// WithIO replaces the terminal's stdin and stdout.
func WithIO(in io.Reader, out io.Writer) UIOption {
	return func(u *UI) {
		u.input = in
		u.output = out
	}
}

// WithModelOptions applies opts to every Model the UI creates.
func WithModelOptions(opts ...ModelOption) UIOption {
	return func(u *UI) {
		u.modelOpts = append(u.modelOpts, opts...)
	}
}

// NewUI creates a UI.
func NewUI(opts ...UIOption) *UI {
	u := &UI{}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run displays the story generator and blocks until the user quits or ctx is canceled.
func (u *UI) Run(ctx context.Context, c *echoquill.Controller, p *echoquill.Presenter) error {
	m := NewModel(c, p, append([]ModelOption{WithContext(ctx)}, u.modelOpts...)...)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if u.input != nil {
		opts = append(opts, tea.WithInput(u.input))
	}
	if u.output != nil {
		opts = append(opts, tea.WithOutput(u.output))
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
