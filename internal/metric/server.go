package metric

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultReadTimeout bounds reading a scrape request.
	DefaultReadTimeout = 10 * time.Second
	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 5 * time.Second
)

// Serve exposes /metrics and /healthz on ln until ctx is canceled. Returns
// nil on graceful shutdown.
func Serve(ctx context.Context, ln net.Listener, reg prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", HandlerFor(reg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok")) //nolint:errcheck // best-effort response
	})

	srv := &http.Server{
		Handler:           mux,
		ReadTimeout:       DefaultReadTimeout,
		ReadHeaderTimeout: DefaultReadTimeout,
		WriteTimeout:      DefaultReadTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Debug("metrics listener started", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	return g.Wait()
}

// ListenAndServe binds addr and calls Serve.
func ListenAndServe(ctx context.Context, addr string, reg prometheus.Gatherer) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	return Serve(ctx, ln, reg)
}
