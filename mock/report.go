package mock

import (
	"context"

	"github.com/fwojciec/adgen"
)

var _ adgen.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of adgen.ReportWriter.
type ReportWriter struct {
	WriteRunFn func(ctx context.Context, run *adgen.Run) (string, error)
}

func (w *ReportWriter) WriteRun(ctx context.Context, run *adgen.Run) (string, error) {
	return w.WriteRunFn(ctx, run)
}
