package event

import (
	"time"

	"github.com/google/uuid"

	"stakepool/internal/staking/models"
)

// Type classifies a pool notification.
type Type string

const (
	TypeStakeCreated     Type = "stake_created"
	TypeStakeClaimed     Type = "stake_claimed"
	TypeEmergencyUnstake Type = "emergency_unstake"
	TypeRewardsAdded     Type = "rewards_added"
	TypeAdminAdded       Type = "admin_added"
	TypeAdminRemoved     Type = "admin_removed"
	TypeOwnerTransferred Type = "owner_transferred"
	TypePoolPaused       Type = "pool_paused"
	TypePoolUnpaused     Type = "pool_unpaused"
)

// Event is emitted after every successful pool mutation. It is for external
// consumption only; the pool never reads events back to make decisions.
type Event struct {
	ID        uuid.UUID      `json:"id"`
	Type      Type           `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Address   models.Address `json:"address,omitempty"`

	// Stake lifecycle fields
	StakeID        uint64 `json:"stake_id,omitempty"`
	Amount         uint64 `json:"amount,omitempty"`
	StartMS        uint64 `json:"start_ms,omitempty"`
	EndMS          uint64 `json:"end_ms,omitempty"`
	APYBasisPoints uint64 `json:"apy_basis_points,omitempty"`
	Reward         uint64 `json:"reward,omitempty"`
	Payout         uint64 `json:"payout,omitempty"`

	// Reserve and capability fields
	ReserveTotal uint64         `json:"reserve_total,omitempty"`
	AdminCount   int            `json:"admin_count,omitempty"`
	NewOwner     models.Address `json:"new_owner,omitempty"`
}
