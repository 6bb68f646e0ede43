package mock

import (
	"context"

	"github.com/fwojciec/adgen"
)

var _ adgen.RunBuilder = (*RunBuilder)(nil)

// RunBuilder is a mock implementation of adgen.RunBuilder.
type RunBuilder struct {
	BuildFn func(ctx context.Context, req adgen.BriefRequest) (*adgen.Run, error)
}

func (b *RunBuilder) Build(ctx context.Context, req adgen.BriefRequest) (*adgen.Run, error) {
	return b.BuildFn(ctx, req)
}
