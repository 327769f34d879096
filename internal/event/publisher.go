package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stakepool/internal/staking/models"
)

// Store persists events append-only so the notification stream doubles as
// the audit trail.
type Store interface {
	Append(ctx context.Context, e Event) error
	ListByAddress(ctx context.Context, addr models.Address) ([]Event, error)
}

// Sink mirrors events to an external system (kafka). Optional.
type Sink interface {
	Publish(ctx context.Context, e Event) error
}

// Publisher hands events from the pool service to the persisting worker over
// a buffered channel. Emission never blocks a pool operation: when the
// buffer is full the event is dropped and logged.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher creates a publisher with the given buffer size.
func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 1024
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit stamps and enqueues an event.
func (p *Publisher) Emit(ctx context.Context, e Event) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	select {
	case p.inbox <- e:
	default:
		p.logger.WarnContext(ctx, "event buffer full, dropping event",
			"type", e.Type,
			"stake_id", e.StakeID,
		)
	}
}

// Events exposes the channel consumed by the worker.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}
