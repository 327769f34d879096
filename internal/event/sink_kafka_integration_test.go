//go:build integration

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"stakepool/pkg/testutil/containers"
)

func TestKafkaSinkPublishesEvents(t *testing.T) {
	ctx := context.Background()
	redpanda := containers.NewRedpandaContainer(t)
	defer func() { _ = redpanda.Container.Terminate(ctx) }()

	const topic = "stakepool.events.test"

	sink, err := NewKafkaSink(ctx, []string{redpanda.Broker}, topic)
	require.NoError(t, err)
	defer sink.Close()

	// Creating the sink twice must tolerate the existing topic.
	again, err := NewKafkaSink(ctx, []string{redpanda.Broker}, topic)
	require.NoError(t, err)
	again.Close()

	sent := Event{
		ID:        uuid.New(),
		Type:      TypeStakeCreated,
		Timestamp: time.Now().UTC(),
		Address:   "alice",
		StakeID:   1,
		Amount:    1_000_000_000,
	}
	require.NoError(t, sink.Publish(ctx, sent))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, []byte("alice"), records[0].Key, "records are keyed by address")

	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, TypeStakeCreated, got.Type)
	assert.Equal(t, uint64(1_000_000_000), got.Amount)
}
