// Package pool implements the staking ledger: a single shared aggregate
// holding the capability registry, the locked-principal and reward-reserve
// balances, and every account's stake records.
//
// Every mutating operation takes the write lock for its whole duration and
// validates before it mutates, so operations are all-or-nothing and no
// interleaving of two mutations is observable. Reads copy state under the
// read lock.
package pool

import (
	"sync"

	dErrors "stakepool/pkg/domain-errors"

	"stakepool/internal/clock"
	"stakepool/internal/staking/capability"
	"stakepool/internal/staking/models"
	"stakepool/internal/token"
)

// Config fixes the pool's offering at construction time.
type Config struct {
	Owner    models.Address
	MinStake uint64
	Periods  models.PeriodTable
	Clock    clock.Clock
}

// Pool is the aggregate. Zero value is not usable; construct with New.
type Pool struct {
	mu sync.RWMutex

	caps     *capability.Registry
	paused   bool
	minStake uint64
	periods  models.PeriodTable
	clock    clock.Clock

	nextStakeID             uint64
	totalStaked             uint64
	totalRewardsDistributed uint64

	locked  token.Balance
	reserve token.Balance

	// stakes keeps insertion order per account; records are append-only
	// except for the one-way claimed flip.
	stakes map[models.Address][]*models.Stake
}

// New creates an empty pool owned by cfg.Owner.
func New(cfg Config) *Pool {
	periods := cfg.Periods
	if periods == nil {
		periods = models.DefaultPeriods()
	}
	return &Pool{
		caps:        capability.New(cfg.Owner),
		minStake:    cfg.MinStake,
		periods:     periods,
		clock:       cfg.Clock,
		nextStakeID: 1,
		stakes:      make(map[models.Address][]*models.Stake),
	}
}

// ExitResult reports the outcome of a claim or emergency unstake. Payout is
// the single combined coin handed back to the caller.
type ExitResult struct {
	Stake     models.Stake
	Principal uint64
	Reward    uint64
	Payout    token.Coin
}

// Stake locks a coin for the given period and returns the new record. The
// coin is only absorbed on success; on error the caller keeps it.
func (p *Pool) Stake(addr models.Address, principal token.Coin, periodDays uint32) (models.Stake, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		return models.Stake{}, dErrors.New(dErrors.CodePaused, "pool is paused")
	}
	amount := principal.Amount()
	if amount == 0 || amount < p.minStake {
		return models.Stake{}, dErrors.Newf(dErrors.CodeInvalidAmount, "stake amount %d is below the minimum %d", amount, p.minStake)
	}
	apy, ok := p.periods.APYFor(periodDays)
	if !ok {
		return models.Stake{}, dErrors.Newf(dErrors.CodeInvalidPeriod, "lock period %d days is not offered", periodDays)
	}

	now := p.clock.NowMS()
	stake := &models.Stake{
		ID:             p.nextStakeID,
		Owner:          addr,
		Amount:         amount,
		StartMS:        now,
		EndMS:          models.EndTime(now, periodDays),
		APYBasisPoints: apy,
	}

	p.stakes[addr] = append(p.stakes[addr], stake)
	p.nextStakeID++
	p.totalStaked += amount
	p.locked.Deposit(principal)

	return *stake, nil
}

// Claim pays out a matured stake: principal plus the contracted reward,
// merged into one coin.
func (p *Pool) Claim(addr models.Address, stakeID uint64) (ExitResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stake := p.findUnclaimed(addr, stakeID)
	if stake == nil {
		return ExitResult{}, dErrors.Newf(dErrors.CodeNotFound, "no unclaimed stake %d for caller", stakeID)
	}
	if !stake.MaturedAt(p.clock.NowMS()) {
		return ExitResult{}, dErrors.Newf(dErrors.CodeNotMatured, "stake %d matures at %d", stakeID, stake.EndMS)
	}

	reward := models.RewardFor(stake)
	if reward > p.reserve.Amount() || stake.Amount > p.locked.Amount() {
		return ExitResult{}, dErrors.New(dErrors.CodeInsufficientReserve, "reserve cannot cover the payout")
	}

	return p.payOut(stake, reward)
}

// EmergencyUnstake exits a stake at any time before or after maturity,
// forfeiting the reward. It never touches the reward reserve, so users can
// always recover principal, paused or not.
func (p *Pool) EmergencyUnstake(addr models.Address, stakeID uint64) (ExitResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stake := p.findUnclaimed(addr, stakeID)
	if stake == nil {
		return ExitResult{}, dErrors.Newf(dErrors.CodeNotFound, "no unclaimed stake %d for caller", stakeID)
	}
	if stake.Amount > p.locked.Amount() {
		return ExitResult{}, dErrors.New(dErrors.CodeInsufficientReserve, "locked balance cannot cover the principal")
	}

	return p.payOut(stake, 0)
}

// payOut flips the claimed flag and moves value out of the pool. Callers
// hold the write lock and have verified balance sufficiency.
func (p *Pool) payOut(stake *models.Stake, reward uint64) (ExitResult, error) {
	principalCoin, err := p.locked.Withdraw(stake.Amount)
	if err != nil {
		return ExitResult{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "locked balance diverged from ledger")
	}
	payout := principalCoin
	if reward > 0 {
		rewardCoin, err := p.reserve.Withdraw(reward)
		if err != nil {
			// Restore the principal withdrawal; sufficiency was checked, so
			// reaching this means the reserve accounting is broken.
			p.locked.Deposit(principalCoin)
			return ExitResult{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "reserve balance diverged from ledger")
		}
		payout = payout.Merge(rewardCoin)
	}

	stake.Claimed = true
	p.totalStaked -= stake.Amount
	p.totalRewardsDistributed += reward

	return ExitResult{
		Stake:     *stake,
		Principal: stake.Amount,
		Reward:    reward,
		Payout:    payout,
	}, nil
}

// findUnclaimed scans the caller's own sequence for the first record with a
// matching id that is still unclaimed. Scoping the scan to the caller means
// ids belonging to other accounts are indistinguishable from absent ones.
func (p *Pool) findUnclaimed(addr models.Address, stakeID uint64) *models.Stake {
	for _, s := range p.stakes[addr] {
		if s.ID == stakeID && !s.Claimed {
			return s
		}
	}
	return nil
}

// AddRewards deposits a coin into the reward reserve and returns the new
// reserve total. Restricted to the owner and admins.
func (p *Pool) AddRewards(caller models.Address, value token.Coin) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.caps.IsPrivileged(caller) {
		return p.reserve.Amount(), dErrors.New(dErrors.CodeUnauthorized, "caller cannot fund the reserve")
	}
	return p.reserve.Deposit(value), nil
}

// Pause blocks the stake entry point. Claims and emergency unstakes stay
// available so holders can always exit.
func (p *Pool) Pause(caller models.Address) error {
	return p.setPaused(caller, true)
}

// Unpause re-opens the stake entry point.
func (p *Pool) Unpause(caller models.Address) error {
	return p.setPaused(caller, false)
}

func (p *Pool) setPaused(caller models.Address, paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.caps.IsPrivileged(caller) {
		return dErrors.New(dErrors.CodeUnauthorized, "caller cannot pause or unpause the pool")
	}
	p.paused = paused
	return nil
}

// GrantAdmin adds an admin on behalf of the owner; returns the new admin
// count.
func (p *Pool) GrantAdmin(caller, newAdmin models.Address) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.caps.GrantAdmin(caller, newAdmin)
}

// RevokeAdmin removes an admin on behalf of the owner; returns the new admin
// count.
func (p *Pool) RevokeAdmin(caller, admin models.Address) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.caps.RevokeAdmin(caller, admin)
}

// TransferOwner moves the owner capability.
func (p *Pool) TransferOwner(caller, newOwner models.Address) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.caps.TransferOwner(caller, newOwner)
}

// Owner returns the current owner address.
func (p *Pool) Owner() models.Address {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.caps.Owner()
}

// Admins returns the admin addresses in stable order.
func (p *Pool) Admins() []models.Address {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.caps.Admins()
}

// UserStakes returns a copy of an account's stake sequence in insertion
// order; empty for accounts that never staked.
func (p *Pool) UserStakes(addr models.Address) []models.Stake {
	p.mu.RLock()
	defer p.mu.RUnlock()

	records := p.stakes[addr]
	out := make([]models.Stake, len(records))
	for i, s := range records {
		out[i] = *s
	}
	return out
}

// Stats returns a snapshot of the pool-wide aggregates.
func (p *Pool) Stats() models.PoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return models.PoolStats{
		TotalStaked:             p.totalStaked,
		TotalRewardsDistributed: p.totalRewardsDistributed,
		LockedBalance:           p.locked.Amount(),
		ReserveBalance:          p.reserve.Amount(),
		HighestStakeID:          p.nextStakeID - 1,
		Paused:                  p.paused,
		AdminCount:              p.caps.AdminCount(),
	}
}

// PreviewReward computes the hypothetical reward for an amount and period
// without creating a stake, using the same formula as Claim.
func (p *Pool) PreviewReward(amount uint64, periodDays uint32) (uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	apy, ok := p.periods.APYFor(periodDays)
	if !ok {
		return 0, dErrors.Newf(dErrors.CodeInvalidPeriod, "lock period %d days is not offered", periodDays)
	}
	return models.ComputeReward(amount, apy, uint64(periodDays)*24*60*60), nil
}
