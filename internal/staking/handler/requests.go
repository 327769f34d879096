package handler

import "stakepool/internal/staking/models"

// StakeRequest opens a new stake for the authenticated address.
type StakeRequest struct {
	Amount     uint64 `json:"amount"`
	PeriodDays uint32 `json:"period_days"`
}

// AddRewardsRequest funds the reward reserve.
type AddRewardsRequest struct {
	Amount uint64 `json:"amount"`
}

// AdminRequest carries a target address for admin grant and owner transfer.
type AdminRequest struct {
	Address string `json:"address"`
}

// StakeResponse wraps a created stake.
type StakeResponse struct {
	Stake models.Stake `json:"stake"`
}

// UserStakesResponse lists the caller's stake sequence.
type UserStakesResponse struct {
	Stakes []models.Stake `json:"stakes"`
}

// AddRewardsResponse reports the deposit and the new reserve total.
type AddRewardsResponse struct {
	Added        uint64 `json:"added"`
	ReserveTotal uint64 `json:"reserve_total"`
}

// AdminResponse reports the admin set after a grant.
type AdminResponse struct {
	Address    string `json:"address"`
	AdminCount int    `json:"admin_count"`
}

// PreviewRewardResponse echoes the query and the computed reward.
type PreviewRewardResponse struct {
	Amount     uint64 `json:"amount"`
	PeriodDays uint32 `json:"period_days"`
	Reward     uint64 `json:"reward"`
}
