//go:build integration

package event

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"stakepool/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx   context.Context
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgresStore(s.pg.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.pg != nil {
		_ = s.pg.DB.Close()
		_ = s.pg.Container.Terminate(s.ctx)
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pg.DB.ExecContext(s.ctx, "TRUNCATE pool_events")
	s.Require().NoError(err)
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) TestAppendAndListByAddress() {
	base := time.Now().UTC().Truncate(time.Millisecond)

	created := Event{
		ID:             uuid.New(),
		Type:           TypeStakeCreated,
		Timestamp:      base,
		Address:        "alice",
		StakeID:        1,
		Amount:         1_000_000_000,
		StartMS:        1_700_000_000_000,
		EndMS:          1_702_592_000_000,
		APYBasisPoints: 500,
	}
	claimed := Event{
		ID:        uuid.New(),
		Type:      TypeStakeClaimed,
		Timestamp: base.Add(time.Second),
		Address:   "alice",
		StakeID:   1,
		Amount:    1_000_000_000,
		Reward:    4_109_589,
		Payout:    1_004_109_589,
	}
	other := Event{
		ID:        uuid.New(),
		Type:      TypeStakeCreated,
		Timestamp: base,
		Address:   "bob",
		StakeID:   2,
		Amount:    2_000_000_000,
	}

	s.Require().NoError(s.store.Append(s.ctx, created))
	s.Require().NoError(s.store.Append(s.ctx, claimed))
	s.Require().NoError(s.store.Append(s.ctx, other))

	events, err := s.store.ListByAddress(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(events, 2)

	s.Equal(created.ID, events[0].ID)
	s.Equal(TypeStakeCreated, events[0].Type)
	s.Equal(uint64(500), events[0].APYBasisPoints)
	s.True(created.Timestamp.Equal(events[0].Timestamp))

	s.Equal(claimed.ID, events[1].ID)
	s.Equal(uint64(4_109_589), events[1].Reward)
	s.Equal(uint64(1_004_109_589), events[1].Payout)
}

func (s *PostgresStoreSuite) TestListUnknownAddressIsEmpty() {
	events, err := s.store.ListByAddress(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *PostgresStoreSuite) TestCapabilityEventsRoundTrip() {
	e := Event{
		ID:         uuid.New(),
		Type:       TypeOwnerTransferred,
		Timestamp:  time.Now().UTC(),
		Address:    "owner",
		NewOwner:   "successor",
		AdminCount: 2,
	}
	s.Require().NoError(s.store.Append(s.ctx, e))

	events, err := s.store.ListByAddress(s.ctx, "owner")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(e.NewOwner, events[0].NewOwner)
	s.Equal(2, events[0].AdminCount)
}
