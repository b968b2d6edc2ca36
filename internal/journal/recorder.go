package journal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/AntoineGS/tidymenu/internal/client"
)

// Recorder writes fetch outcomes to a journal and prunes it. Failures are
// logged and swallowed so the journal never blocks the menu. A nil
// *Recorder is valid and records nothing.
type Recorder struct {
	journal *Journal
	logger  *slog.Logger
	keep    int
}

// NewRecorder wraps j. keep bounds the number of retained entries.
func NewRecorder(j *Journal, keep int, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Recorder{journal: j, keep: keep, logger: logger}
}

// Observe records one fetch. fetchErr may be nil. Nothing is recorded once
// ctx is done: the caller has moved on and the journal may be closed.
func (r *Recorder) Observe(ctx context.Context, url string, items int, elapsed time.Duration, fetchErr error) {
	if r == nil || r.journal == nil || ctx.Err() != nil {
		return
	}

	e := Entry{URL: url, Items: items, Duration: elapsed}
	if fetchErr != nil {
		e.Error = fetchErr.Error()

		var fe *client.FetchError
		if errors.As(fetchErr, &fe) {
			e.Status = fe.Status
		}
	}

	if err := r.journal.Record(ctx, e); err != nil {
		r.logger.Warn("journal record failed", slog.String("error", err.Error()))
		return
	}

	if r.keep > 0 {
		if err := r.journal.Prune(ctx, r.keep); err != nil {
			r.logger.Warn("journal prune failed", slog.String("error", err.Error()))
		}
	}
}
