// Package service is the operations layer over the pool aggregate. It owns
// everything the ledger itself must not: caller-facing orchestration,
// notification emission, metrics, and tracing. The pool stays the single
// source of truth for validation and state.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dErrors "stakepool/pkg/domain-errors"
	"stakepool/pkg/platform/sentinel"

	"stakepool/internal/event"
	"stakepool/internal/platform/metrics"
	"stakepool/internal/staking/models"
	"stakepool/internal/staking/pool"
	"stakepool/internal/staking/statscache"
	"stakepool/internal/token"
)

// Notifier receives one event per successful mutation.
type Notifier interface {
	Emit(ctx context.Context, e event.Event)
}

// Service orchestrates the staking pool operations.
type Service struct {
	pool     *pool.Pool
	bank     *token.Bank
	logger   *slog.Logger
	notifier Notifier
	metrics  *metrics.Metrics
	cache    *statscache.Cache
	tracer   trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithNotifier(notifier Notifier) Option {
	return func(s *Service) {
		s.notifier = notifier
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithStatsCache(c *statscache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// New constructs a Service.
func New(p *pool.Pool, bank *token.Bank, opts ...Option) *Service {
	s := &Service{
		pool:   p,
		bank:   bank,
		logger: slog.Default(),
		tracer: otel.Tracer("stakepool/staking"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stake moves principal from the caller's account into the pool for the
// given lock period.
func (s *Service) Stake(ctx context.Context, addr models.Address, amount uint64, periodDays uint32) (models.Stake, error) {
	ctx, span := s.tracer.Start(ctx, "staking.stake", trace.WithAttributes(
		attribute.Int64("stake.amount", int64(amount)),
		attribute.Int("stake.period_days", int(periodDays)),
	))
	defer span.End()
	defer s.observe("stake", time.Now())

	principal, err := s.bank.WithdrawFrom(string(addr), amount)
	if err != nil {
		if errors.Is(err, sentinel.ErrInsufficientBalance) {
			return models.Stake{}, dErrors.New(dErrors.CodeValidation, "account balance cannot cover the stake")
		}
		return models.Stake{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to withdraw principal")
	}

	stake, err := s.pool.Stake(addr, principal, periodDays)
	if err != nil {
		// The pool did not absorb the coin; hand it back.
		s.bank.DepositTo(string(addr), principal)
		return models.Stake{}, s.fail(span, err)
	}

	s.metrics.IncrementStakesCreated()
	s.syncGauges()
	s.emit(ctx, event.Event{
		Type:           event.TypeStakeCreated,
		Address:        addr,
		StakeID:        stake.ID,
		Amount:         stake.Amount,
		StartMS:        stake.StartMS,
		EndMS:          stake.EndMS,
		APYBasisPoints: stake.APYBasisPoints,
	})
	s.logger.InfoContext(ctx, "stake created",
		"stake_id", stake.ID,
		"amount", stake.Amount,
		"period_days", periodDays,
	)
	return stake, nil
}

// Claim pays out a matured stake to the caller's account.
func (s *Service) Claim(ctx context.Context, addr models.Address, stakeID uint64) (models.Payout, error) {
	ctx, span := s.tracer.Start(ctx, "staking.claim", trace.WithAttributes(
		attribute.Int64("stake.id", int64(stakeID)),
	))
	defer span.End()
	defer s.observe("claim", time.Now())

	res, err := s.pool.Claim(addr, stakeID)
	if err != nil {
		return models.Payout{}, s.fail(span, err)
	}

	s.bank.DepositTo(string(addr), res.Payout)
	s.metrics.IncrementExit("claimed")
	s.metrics.AddRewardsDistributed(res.Reward)
	s.syncGauges()
	s.emit(ctx, event.Event{
		Type:    event.TypeStakeClaimed,
		Address: addr,
		StakeID: stakeID,
		Amount:  res.Principal,
		Reward:  res.Reward,
		Payout:  res.Payout.Amount(),
	})
	s.logger.InfoContext(ctx, "stake claimed",
		"stake_id", stakeID,
		"principal", res.Principal,
		"reward", res.Reward,
	)
	return payoutOf(stakeID, res), nil
}

// EmergencyUnstake exits a stake before maturity, forfeiting the reward.
func (s *Service) EmergencyUnstake(ctx context.Context, addr models.Address, stakeID uint64) (models.Payout, error) {
	ctx, span := s.tracer.Start(ctx, "staking.emergency_unstake", trace.WithAttributes(
		attribute.Int64("stake.id", int64(stakeID)),
	))
	defer span.End()
	defer s.observe("emergency_unstake", time.Now())

	res, err := s.pool.EmergencyUnstake(addr, stakeID)
	if err != nil {
		return models.Payout{}, s.fail(span, err)
	}

	s.bank.DepositTo(string(addr), res.Payout)
	s.metrics.IncrementExit("emergency")
	s.syncGauges()
	s.emit(ctx, event.Event{
		Type:    event.TypeEmergencyUnstake,
		Address: addr,
		StakeID: stakeID,
		Amount:  res.Principal,
		Reward:  0,
		Payout:  res.Payout.Amount(),
	})
	s.logger.InfoContext(ctx, "emergency unstake",
		"stake_id", stakeID,
		"principal", res.Principal,
	)
	return payoutOf(stakeID, res), nil
}

// AddRewards moves value from a privileged caller's account into the reward
// reserve and returns the new reserve total.
func (s *Service) AddRewards(ctx context.Context, caller models.Address, amount uint64) (uint64, error) {
	ctx, span := s.tracer.Start(ctx, "staking.add_rewards", trace.WithAttributes(
		attribute.Int64("rewards.amount", int64(amount)),
	))
	defer span.End()
	defer s.observe("add_rewards", time.Now())

	if amount == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidAmount, "reward deposit must be positive")
	}
	value, err := s.bank.WithdrawFrom(string(caller), amount)
	if err != nil {
		if errors.Is(err, sentinel.ErrInsufficientBalance) {
			return 0, dErrors.New(dErrors.CodeValidation, "account balance cannot cover the deposit")
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to withdraw reward deposit")
	}

	reserve, err := s.pool.AddRewards(caller, value)
	if err != nil {
		s.bank.DepositTo(string(caller), value)
		return 0, s.fail(span, err)
	}

	s.syncGauges()
	s.emit(ctx, event.Event{
		Type:         event.TypeRewardsAdded,
		Address:      caller,
		Amount:       amount,
		ReserveTotal: reserve,
	})
	s.logger.InfoContext(ctx, "rewards added",
		"amount", amount,
		"reserve_total", reserve,
	)
	return reserve, nil
}

// Pause blocks new stakes; existing stakes can still be claimed or exited.
func (s *Service) Pause(ctx context.Context, caller models.Address) error {
	ctx, span := s.tracer.Start(ctx, "staking.pause")
	defer span.End()

	if err := s.pool.Pause(caller); err != nil {
		return s.fail(span, err)
	}
	s.metrics.SetPaused(true)
	s.emit(ctx, event.Event{Type: event.TypePoolPaused, Address: caller})
	s.logger.InfoContext(ctx, "pool paused")
	return nil
}

// Unpause re-opens the stake entry point.
func (s *Service) Unpause(ctx context.Context, caller models.Address) error {
	ctx, span := s.tracer.Start(ctx, "staking.unpause")
	defer span.End()

	if err := s.pool.Unpause(caller); err != nil {
		return s.fail(span, err)
	}
	s.metrics.SetPaused(false)
	s.emit(ctx, event.Event{Type: event.TypePoolUnpaused, Address: caller})
	s.logger.InfoContext(ctx, "pool unpaused")
	return nil
}

// GrantAdmin adds an admin and returns the new admin count.
func (s *Service) GrantAdmin(ctx context.Context, caller, newAdmin models.Address) (int, error) {
	ctx, span := s.tracer.Start(ctx, "staking.grant_admin")
	defer span.End()

	count, err := s.pool.GrantAdmin(caller, newAdmin)
	if err != nil {
		return count, s.fail(span, err)
	}
	s.emit(ctx, event.Event{
		Type:       event.TypeAdminAdded,
		Address:    newAdmin,
		AdminCount: count,
	})
	s.logger.InfoContext(ctx, "admin granted", "admin_count", count)
	return count, nil
}

// RevokeAdmin removes an admin and returns the new admin count.
func (s *Service) RevokeAdmin(ctx context.Context, caller, admin models.Address) (int, error) {
	ctx, span := s.tracer.Start(ctx, "staking.revoke_admin")
	defer span.End()

	count, err := s.pool.RevokeAdmin(caller, admin)
	if err != nil {
		return count, s.fail(span, err)
	}
	s.emit(ctx, event.Event{
		Type:       event.TypeAdminRemoved,
		Address:    admin,
		AdminCount: count,
	})
	s.logger.InfoContext(ctx, "admin revoked", "admin_count", count)
	return count, nil
}

// TransferOwner hands the owner capability to a new address.
func (s *Service) TransferOwner(ctx context.Context, caller, newOwner models.Address) error {
	ctx, span := s.tracer.Start(ctx, "staking.transfer_owner")
	defer span.End()

	if err := s.pool.TransferOwner(caller, newOwner); err != nil {
		return s.fail(span, err)
	}
	s.emit(ctx, event.Event{
		Type:     event.TypeOwnerTransferred,
		Address:  caller,
		NewOwner: newOwner,
	})
	s.logger.InfoContext(ctx, "ownership transferred")
	return nil
}

// UserStakes returns the caller's stake sequence; empty if they never
// staked.
func (s *Service) UserStakes(ctx context.Context, addr models.Address) ([]models.Stake, error) {
	_, span := s.tracer.Start(ctx, "staking.user_stakes")
	defer span.End()
	return s.pool.UserStakes(addr), nil
}

// Stats returns the pool aggregates, serving from the snapshot cache when it
// is fresh.
func (s *Service) Stats(ctx context.Context) (models.PoolStats, error) {
	ctx, span := s.tracer.Start(ctx, "staking.stats")
	defer span.End()

	if stats, ok := s.cache.Get(ctx); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return stats, nil
	}
	stats := s.pool.Stats()
	s.cache.Set(ctx, stats)
	return stats, nil
}

// PreviewReward computes the hypothetical reward for an amount and period.
func (s *Service) PreviewReward(ctx context.Context, amount uint64, periodDays uint32) (uint64, error) {
	_, span := s.tracer.Start(ctx, "staking.preview_reward")
	defer span.End()

	reward, err := s.pool.PreviewReward(amount, periodDays)
	if err != nil {
		return 0, s.fail(span, err)
	}
	return reward, nil
}

// MintTo mints supply into an account. Dev faucet only; the route is not
// registered outside dev mode.
func (s *Service) MintTo(ctx context.Context, addr models.Address, amount uint64) (uint64, error) {
	_, span := s.tracer.Start(ctx, "staking.mint_to")
	defer span.End()

	balance, err := s.bank.MintTo(string(addr), amount)
	if err != nil {
		if errors.Is(err, sentinel.ErrSupplyExhausted) {
			return 0, dErrors.New(dErrors.CodeValidation, "mint exceeds the fixed total supply")
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mint")
	}
	return balance, nil
}

// BalanceOf reports an account's unstaked balance.
func (s *Service) BalanceOf(ctx context.Context, addr models.Address) (uint64, error) {
	return s.bank.BalanceOf(string(addr)), nil
}

func (s *Service) emit(ctx context.Context, e event.Event) {
	if s.notifier != nil {
		s.notifier.Emit(ctx, e)
	}
}

func (s *Service) observe(operation string, start time.Time) {
	s.metrics.ObserveOperation(operation, time.Since(start))
}

// syncGauges mirrors the pool aggregates into prometheus after a mutation.
func (s *Service) syncGauges() {
	if s.metrics == nil {
		return
	}
	stats := s.pool.Stats()
	s.metrics.SetTotalStaked(stats.TotalStaked)
	s.metrics.SetReserveBalance(stats.ReserveBalance)
	s.metrics.SetPaused(stats.Paused)
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, string(dErrors.CodeOf(err)))
	return err
}

func payoutOf(stakeID uint64, res pool.ExitResult) models.Payout {
	return models.Payout{
		StakeID:   stakeID,
		Principal: res.Principal,
		Reward:    res.Reward,
		Total:     res.Payout.Amount(),
	}
}
