package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakepool/internal/staking/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherStampsEvents(t *testing.T) {
	p := NewPublisher(4, discardLogger())

	p.Emit(context.Background(), Event{Type: TypeStakeCreated, Address: "alice", StakeID: 1})

	select {
	case e := <-p.Events():
		assert.NotEqual(t, uuid.Nil, e.ID, "emit assigns an id")
		assert.False(t, e.Timestamp.IsZero(), "emit assigns a timestamp")
		assert.Equal(t, TypeStakeCreated, e.Type)
	default:
		t.Fatal("expected an event on the channel")
	}
}

func TestPublisherPreservesExistingStamps(t *testing.T) {
	p := NewPublisher(4, discardLogger())

	id := uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.Emit(context.Background(), Event{ID: id, Timestamp: ts, Type: TypePoolPaused})

	e := <-p.Events()
	assert.Equal(t, id, e.ID)
	assert.Equal(t, ts, e.Timestamp)
}

func TestPublisherDropsWhenFull(t *testing.T) {
	p := NewPublisher(1, discardLogger())
	ctx := context.Background()

	p.Emit(ctx, Event{Type: TypeStakeCreated, StakeID: 1})
	p.Emit(ctx, Event{Type: TypeStakeCreated, StakeID: 2}) // buffer full, dropped

	first := <-p.Events()
	assert.Equal(t, uint64(1), first.StakeID)

	select {
	case e := <-p.Events():
		t.Fatalf("expected the second event to be dropped, got stake_id %d", e.StakeID)
	default:
	}
}

// recordingSink captures published events.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Publish(_ context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) published() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func TestWorkerPersistsAndMirrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewInMemoryStore()
	sink := &recordingSink{}
	p := NewPublisher(8, discardLogger())
	w := NewWorker(store, sink, p.Events(), discardLogger())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	p.Emit(ctx, Event{Type: TypeStakeCreated, Address: "alice", StakeID: 1})
	p.Emit(ctx, Event{Type: TypeStakeClaimed, Address: "alice", StakeID: 1})

	require.Eventually(t, func() bool {
		return len(store.All()) == 2 && len(sink.published()) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	events, err := store.ListByAddress(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, TypeStakeCreated, events[0].Type)
	assert.Equal(t, TypeStakeClaimed, events[1].Type)
}

func TestWorkerContinuesPastStoreFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewInMemoryStore()
	p := NewPublisher(8, discardLogger())

	failing := &failingThenOKStore{inner: store, failures: 1}
	w := NewWorker(failing, nil, p.Events(), discardLogger())
	go func() { _ = w.Run(ctx) }()

	p.Emit(ctx, Event{Type: TypeStakeCreated, StakeID: 1})
	p.Emit(ctx, Event{Type: TypeStakeCreated, StakeID: 2})

	require.Eventually(t, func() bool {
		return len(store.All()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(2), store.All()[0].StakeID, "the failed event is skipped, not retried")
}

// failingThenOKStore rejects the first n appends, then delegates.
type failingThenOKStore struct {
	inner    *InMemoryStore
	mu       sync.Mutex
	failures int
}

func (s *failingThenOKStore) Append(ctx context.Context, e Event) error {
	s.mu.Lock()
	if s.failures > 0 {
		s.failures--
		s.mu.Unlock()
		return errors.New("store unavailable")
	}
	s.mu.Unlock()
	return s.inner.Append(ctx, e)
}

func (s *failingThenOKStore) ListByAddress(ctx context.Context, addr models.Address) ([]Event, error) {
	return s.inner.ListByAddress(ctx, addr)
}

func TestInMemoryStoreFiltersByAddress(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.Append(ctx, Event{Type: TypeStakeCreated, Address: "alice", StakeID: 1}))
	require.NoError(t, store.Append(ctx, Event{Type: TypeStakeCreated, Address: "bob", StakeID: 2}))
	require.NoError(t, store.Append(ctx, Event{Type: TypeStakeClaimed, Address: "alice", StakeID: 1}))

	events, err := store.ListByAddress(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint64(1), events[0].StakeID)

	events, err = store.ListByAddress(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, events)
}
