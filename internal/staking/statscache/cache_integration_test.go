//go:build integration

package statscache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	platformredis "stakepool/internal/platform/redis"
	"stakepool/internal/staking/models"
	"stakepool/pkg/testutil/containers"
)

type CacheSuite struct {
	suite.Suite
	ctx   context.Context
	redis *containers.RedisContainer
	cache *Cache
}

func (s *CacheSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := &platformredis.Client{Client: s.redis.Client}
	s.cache = New(client, 200*time.Millisecond, logger)
	s.Require().NotNil(s.cache)
}

func (s *CacheSuite) TearDownSuite() {
	if s.redis != nil {
		_ = s.redis.Client.Close()
		_ = s.redis.Container.Terminate(s.ctx)
	}
}

func (s *CacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) TestSetAndGet() {
	stats := models.PoolStats{
		TotalStaked:             5_000_000_000,
		TotalRewardsDistributed: 4_109_589,
		LockedBalance:           5_000_000_000,
		ReserveBalance:          95_890_411,
		HighestStakeID:          3,
		Paused:                  true,
		AdminCount:              2,
	}

	s.cache.Set(s.ctx, stats)

	got, ok := s.cache.Get(s.ctx)
	s.Require().True(ok)
	s.Equal(stats, got)
}

func (s *CacheSuite) TestMissOnEmptyCache() {
	_, ok := s.cache.Get(s.ctx)
	s.False(ok)
}

func (s *CacheSuite) TestSnapshotExpires() {
	s.cache.Set(s.ctx, models.PoolStats{TotalStaked: 1})

	_, ok := s.cache.Get(s.ctx)
	s.Require().True(ok)

	time.Sleep(300 * time.Millisecond)

	_, ok = s.cache.Get(s.ctx)
	s.False(ok, "the snapshot must age out at the TTL")
}

func (s *CacheSuite) TestCorruptSnapshotIsAMiss() {
	s.Require().NoError(s.redis.Client.Set(s.ctx, "stakepool:stats", "{not json", time.Minute).Err())

	_, ok := s.cache.Get(s.ctx)
	s.False(ok)
}

func (s *CacheSuite) TestNilCacheIsANoOp() {
	var nilCache *Cache
	nilCache.Set(s.ctx, models.PoolStats{TotalStaked: 1})
	_, ok := nilCache.Get(s.ctx)
	s.False(ok)
}
