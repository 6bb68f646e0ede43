package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

// Ensure LoggingGenerator implements adgen.Generator.
var _ adgen.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts and responses
// are logged by size only.
type LoggingGenerator struct {
	next   adgen.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next adgen.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string, opts adgen.GenerateOptions) (text string, err error) {
	defer func(begin time.Time) {
		logCall(ctx, g.logger, "generate", begin, err,
			slog.Int("prompt_chars", len(prompt)),
			slog.Int("response_chars", len(text)),
			slog.Bool("search", opts.Search),
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt, opts)
}
