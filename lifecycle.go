package echoquill

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// State is the lifecycle state of the generate action.
type State int

// Lifecycle states.
const (
	StateIdle State = iota
	StateLoading
	StateSettled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Controller runs generate actions one at a time.
// It owns the lifecycle state and the most recent result.
type Controller struct {
	generator StoryGenerator
	logger    *slog.Logger

	mu     sync.Mutex
	state  State
	result GenerationResult
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates an idle Controller that generates stories with g.
func NewController(g StoryGenerator, opts ...ControllerOption) *Controller {
	c := &Controller{
		generator: g,
		logger:    slog.Default(),
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the settled result. It is the zero value unless State is StateSettled.
func (c *Controller) Result() GenerationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Trigger starts a generate action for the form's current values.
//
// A theme that is empty after trimming fails with *ValidationError and leaves the
// state untouched. A trigger while another action is loading fails with ErrInFlight.
// Otherwise the controller moves to StateLoading, issues exactly one call to the
// generator and returns a channel that delivers the settled result once.
func (c *Controller) Trigger(ctx context.Context, form Form) (<-chan GenerationResult, error) {
	if strings.TrimSpace(form.Theme()) == "" {
		return nil, &ValidationError{Field: "theme", Reason: "must not be empty"}
	}

	c.mu.Lock()
	if c.state == StateLoading {
		c.mu.Unlock()
		return nil, ErrInFlight
	}
	c.state = StateLoading
	c.result = GenerationResult{}
	c.mu.Unlock()

	req := form.Request()
	c.logger.Info("generating story",
		"genre", req.Genre,
		"tone", req.Tone,
		"length", req.Length,
	)

	done := make(chan GenerationResult, 1)
	go func() {
		start := time.Now()
		story, err := c.generator.Generate(ctx, req)

		var result GenerationResult
		if err != nil {
			result = GenerationResult{Err: err}
			c.logger.Warn("story generation failed", "error", err, "duration", time.Since(start))
		} else {
			result = GenerationResult{Story: story}
			c.logger.Info("story generated", "bytes", len(story), "duration", time.Since(start))
		}

		c.mu.Lock()
		c.state = StateSettled
		c.result = result
		c.mu.Unlock()

		done <- result
	}()

	return done, nil
}
