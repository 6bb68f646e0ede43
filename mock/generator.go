package mock

import (
	"context"

	"github.com/fwojciec/adgen"
)

var _ adgen.Generator = (*Generator)(nil)

// Generator is a mock implementation of adgen.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string, opts adgen.GenerateOptions) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string, opts adgen.GenerateOptions) (string, error) {
	return g.GenerateFn(ctx, prompt, opts)
}
