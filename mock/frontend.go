package mock

import (
	"context"

	"github.com/fwojciec/echoquill"
)

// Compile-time interface verification.
var _ echoquill.Frontend = (*Frontend)(nil)

// Frontend is a mock implementation of echoquill.Frontend.
type Frontend struct {
	RunFn func(ctx context.Context, c *echoquill.Controller, p *echoquill.Presenter) error
}

func (f *Frontend) Run(ctx context.Context, c *echoquill.Controller, p *echoquill.Presenter) error {
	return f.RunFn(ctx, c, p)
}
