// Package mock provides test doubles for echoquill interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/echoquill"
)

// Compile-time interface verification.
var _ echoquill.StoryGenerator = (*StoryGenerator)(nil)

// StoryGenerator is a mock implementation of echoquill.StoryGenerator.
type StoryGenerator struct {
	GenerateFn func(ctx context.Context, req echoquill.GenerationRequest) (string, error)
}

func (g *StoryGenerator) Generate(ctx context.Context, req echoquill.GenerationRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}
