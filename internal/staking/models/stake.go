package models

// Address identifies an account. Callers authenticate as an address via the
// JWT layer; the pool treats it as an opaque key.
type Address string

// Stake is a single locked position.
//
// Invariants:
//   - Amount > 0 and >= the pool's minimum stake threshold
//   - EndMS = StartMS + lock period in milliseconds
//   - APYBasisPoints is captured at creation and never changes afterwards,
//     even if the pool's period table is later reconfigured
//   - Claimed transitions false -> true exactly once, via claim or emergency
//     unstake, and never reverts
//
// Stakes are retained after claiming for audit history; they are never
// deleted.
type Stake struct {
	ID             uint64  `json:"id"`
	Owner          Address `json:"owner"`
	Amount         uint64  `json:"amount"`
	StartMS        uint64  `json:"start_ms"`
	EndMS          uint64  `json:"end_ms"`
	APYBasisPoints uint64  `json:"apy_basis_points"`
	Claimed        bool    `json:"claimed"`
}

// MaturedAt reports whether the stake's lock period has elapsed at the given
// millisecond timestamp.
func (s *Stake) MaturedAt(nowMS uint64) bool {
	return nowMS >= s.EndMS
}

// DurationSeconds is the contracted lock duration. The reward formula uses
// this, never the elapsed time, so the payout is fixed at creation.
func (s *Stake) DurationSeconds() uint64 {
	return (s.EndMS - s.StartMS) / 1000
}

// Payout is the result of a claim or emergency unstake. Reward is zero on
// the emergency path.
type Payout struct {
	StakeID   uint64 `json:"stake_id"`
	Principal uint64 `json:"principal"`
	Reward    uint64 `json:"reward"`
	Total     uint64 `json:"total"`
}

// PoolStats is a read-only snapshot of the pool-wide aggregates.
type PoolStats struct {
	TotalStaked             uint64 `json:"total_staked"`
	TotalRewardsDistributed uint64 `json:"total_rewards_distributed"`
	LockedBalance           uint64 `json:"locked_balance"`
	ReserveBalance          uint64 `json:"reserve_balance"`
	HighestStakeID          uint64 `json:"highest_stake_id"`
	Paused                  bool   `json:"paused"`
	AdminCount              int    `json:"admin_count"`
}
