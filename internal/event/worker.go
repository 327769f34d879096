package event

import (
	"context"
	"log/slog"
)

// Worker consumes events from the publisher and persists them, optionally
// mirroring to a sink. A failed append or publish is logged and skipped so
// the stream keeps flowing; events never feed back into pool decisions.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker builds a worker. sink may be nil.
func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

// Run processes events until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-w.inbox:
			if err := w.store.Append(ctx, e); err != nil {
				w.logger.ErrorContext(ctx, "failed to persist event",
					slog.String("type", string(e.Type)),
					slog.String("error", err.Error()),
				)
			}
			if w.sink == nil {
				continue
			}
			if err := w.sink.Publish(ctx, e); err != nil {
				w.logger.ErrorContext(ctx, "failed to mirror event",
					slog.String("type", string(e.Type)),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
