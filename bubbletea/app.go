// Package bubbletea provides the EchoQuill terminal UI using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/echoquill"
)

// field identifies the focused form control.
type field int

const (
	fieldTheme field = iota
	fieldGenre
	fieldTone
	fieldLength
	fieldGenerate
	fieldCount
)

// statusKind selects how the status line is colored.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// generationDoneMsg carries the outcome of a generate action back into Update.
type generationDoneMsg struct {
	result echoquill.GenerationResult
}

// Model is the Bubble Tea model for the story generator.
type Model struct {
	ctx        context.Context
	controller *echoquill.Controller
	presenter  *echoquill.Presenter
	form       echoquill.Form

	// Appearance
	theme     echoquill.Theme
	altTheme  echoquill.Theme
	palette   echoquill.Palette
	renderer  *lipgloss.Renderer
	wrapWidth int

	// Widgets
	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	keymap   KeyMap

	// UI state
	focus      field
	result     echoquill.GenerationResult
	settled    bool
	status     string
	statusKind statusKind
	width      int
	height     int
	ready      bool
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	ctx      context.Context
	renderer *lipgloss.Renderer
	theme    echoquill.Theme
	altTheme echoquill.Theme
	form     *echoquill.Form
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithThemes sets the active theme and the theme ctrl+t switches to.
func WithThemes(active, alternate echoquill.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = active
		cfg.altTheme = alternate
	}
}

// WithContext sets the context passed to generate actions.
func WithContext(ctx context.Context) ModelOption {
	return func(cfg *modelConfig) {
		cfg.ctx = ctx
	}
}

// WithForm sets the initial form values.
func WithForm(f echoquill.Form) ModelOption {
	return func(cfg *modelConfig) {
		cfg.form = &f
	}
}

// NewModel creates a Model that triggers generation through controller and
// offers copy and export through presenter.
func NewModel(controller *echoquill.Controller, presenter *echoquill.Presenter, opts ...ModelOption) Model {
	cfg := &modelConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}

	form := echoquill.NewForm()
	if cfg.form != nil {
		form = *cfg.form
	}

	input := textarea.New()
	input.Placeholder = "Describe your story idea..."
	input.ShowLineNumbers = false
	input.CharLimit = 2000
	input.SetHeight(3)
	input.SetValue(form.Theme())
	input.Focus()

	m := Model{
		ctx:        cfg.ctx,
		controller: controller,
		presenter:  presenter,
		form:       form,
		theme:      cfg.theme,
		altTheme:   cfg.altTheme,
		renderer:   cfg.renderer,
		input:      input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:   viewport.New(0, 0),
		keymap:     DefaultKeyMap(),
		focus:      fieldTheme,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case generationDoneMsg:
		m.settle(msg.result)
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == fieldTheme {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Generate):
		return m, m.generate()
	case key.Matches(msg, m.keymap.Submit) && m.focus == fieldGenerate:
		return m, m.generate()
	case key.Matches(msg, m.keymap.ToggleTheme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keymap.Copy):
		m.copyStory()
		return m, nil
	case key.Matches(msg, m.keymap.Export):
		m.exportStory()
		return m, nil
	case key.Matches(msg, m.keymap.NextField):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keymap.PrevField):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keymap.ScrollUp):
		m.viewport.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keymap.ScrollDown):
		m.viewport.HalfPageDown()
		return m, nil
	}

	if m.focus != fieldTheme {
		m.cycleOption(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.form.SetTheme(m.input.Value())
	return m, cmd
}

// generate triggers a generate action. A blank theme or an action already in
// flight leaves the lifecycle untouched.
func (m *Model) generate() tea.Cmd {
	m.form.SetTheme(m.input.Value())

	ch, err := m.controller.Trigger(m.ctx, m.form)
	switch {
	case errors.Is(err, echoquill.ErrInFlight):
		return nil
	case err != nil:
		m.setStatus(echoquill.UserMessage(err), statusError)
		return nil
	}

	m.result = echoquill.GenerationResult{}
	m.settled = false
	m.viewport.SetContent("")
	m.setStatus("Generating your story...", statusInfo)
	return tea.Batch(m.spinner.Tick, waitForResult(ch))
}

// waitForResult blocks until the generate action settles.
func waitForResult(ch <-chan echoquill.GenerationResult) tea.Cmd {
	return func() tea.Msg {
		return generationDoneMsg{result: <-ch}
	}
}

func (m *Model) settle(r echoquill.GenerationResult) {
	m.result = r
	m.settled = true
	if !r.OK() {
		m.viewport.SetContent("")
		m.setStatus(echoquill.UserMessage(r.Err), statusError)
		return
	}
	m.refreshStory()
	m.viewport.GotoTop()
	m.setStatus("Story ready. ctrl+y to copy, ctrl+s to export.", statusSuccess)
}

// hasStory reports whether copy and export are available.
func (m Model) hasStory() bool {
	return m.settled && m.result.OK()
}

func (m Model) loading() bool {
	return m.controller.State() == echoquill.StateLoading
}

func (m *Model) copyStory() {
	if !m.hasStory() {
		return
	}
	if m.presenter.Copy(m.result.Story) {
		m.setStatus("Copied to clipboard!", statusSuccess)
		return
	}
	m.setStatus("Could not copy to clipboard.", statusError)
}

func (m *Model) exportStory() {
	if !m.hasStory() {
		return
	}
	path, err := m.presenter.Export(m.result.Story)
	if err != nil {
		m.setStatus(fmt.Sprintf("Export failed: %v", err), statusError)
		return
	}
	m.setStatus("Saved "+path, statusSuccess)
}

func (m *Model) setStatus(text string, kind statusKind) {
	m.status = text
	m.statusKind = kind
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldTheme {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) cycleOption(msg tea.KeyMsg) {
	delta := 0
	switch {
	case key.Matches(msg, m.keymap.OptionNext):
		delta = 1
	case key.Matches(msg, m.keymap.OptionPrev):
		delta = -1
	default:
		return
	}

	switch m.focus {
	case fieldGenre:
		m.form.CycleGenre(delta)
	case fieldTone:
		m.form.CycleTone(delta)
	case fieldLength:
		m.form.CycleLength(delta)
	}
}

func (m *Model) toggleTheme() {
	if m.altTheme == nil {
		return
	}
	m.theme, m.altTheme = m.altTheme, m.theme
	m.applyTheme()
	if m.hasStory() {
		m.refreshStory()
	}
}

func (m *Model) applyTheme() {
	if m.theme != nil {
		m.palette = m.theme.Palette()
	} else {
		m.palette = defaultPalette()
	}
	m.spinner.Style = m.newStyle().Foreground(lipgloss.Color(m.palette.Accent))
}

// refreshStory re-renders the settled story at the current width.
func (m *Model) refreshStory() {
	m.viewport.SetContent(WrapStory(m.presenter.Display(m.result.Story), m.wrapWidth))
}

// formHeight is the number of rows above the story panel.
const formHeight = 14

func (m *Model) layout() {
	width := max(m.width-4, 20)
	m.wrapWidth = width
	m.input.SetWidth(width)
	m.viewport.Width = width
	m.viewport.Height = max(m.height-formHeight-4, 3)
	if m.hasStory() {
		m.refreshStory()
	}
}

func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// defaultPalette is used when no theme is configured.
func defaultPalette() echoquill.Palette {
	return echoquill.Palette{
		Title:   "13",
		Accent:  "12",
		Muted:   "8",
		Border:  "8",
		Success: "10",
		Error:   "9",
	}
}
