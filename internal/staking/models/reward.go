package models

import "math/big"

var (
	rewardDenominator = big.NewInt(basisPointDiv * secondsPerYear)
)

// ComputeReward returns floor(amount * apyBasisPoints * durationSeconds /
// (10000 * 365 * 86400)).
//
// The intermediate product can exceed 64 bits for large principals, so the
// arithmetic runs through math/big. Division truncates toward zero; that
// rounding is part of the payout contract and must not change.
func ComputeReward(amount, apyBasisPoints, durationSeconds uint64) uint64 {
	r := new(big.Int).SetUint64(amount)
	r.Mul(r, new(big.Int).SetUint64(apyBasisPoints))
	r.Mul(r, new(big.Int).SetUint64(durationSeconds))
	r.Quo(r, rewardDenominator)
	return r.Uint64()
}

// RewardFor computes the contracted reward of a stake.
func RewardFor(s *Stake) uint64 {
	return ComputeReward(s.Amount, s.APYBasisPoints, s.DurationSeconds())
}
