package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fwojciec/adgen"
	adgenchi "github.com/fwojciec/adgen/chi"
)

// ShutdownTimeout bounds how long in-flight requests may take to finish
// after an interrupt.
const ShutdownTimeout = 30 * time.Second

// Run serves the HTTP API until the context is canceled or the process is
// interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	var builder adgen.RunBuilder
	if deps.Builder != nil {
		builder = deps.Builder
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := &http.Server{
		Handler:           adgenchi.NewServer(builder, deps.Runs, c.Token, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fail(deps, adgen.Errorf(adgen.EUNAVAILABLE, "failed to listen on %s: %v", c.Addr, err))
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stderr, "Listening on %s\n", ln.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return fail(deps, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fail(deps, fmt.Errorf("shutdown: %w", err))
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stderr, "Server stopped")
	return nil
}
