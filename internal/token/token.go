// Package token is the fungible-value collaborator of the staking pool. It
// models a single asset with a fixed total supply: coins are concrete
// transferable values, balances hold custody, and the treasury is the only
// mint/burn authority.
package token

import (
	"fmt"

	"stakepool/pkg/platform/sentinel"
)

// Decimals is the fixed precision of the asset; all amounts are base units.
const Decimals = 9

// Coin is a concrete transferable value. It is created by Treasury.Mint or
// Balance.Withdraw and consumed by Balance.Deposit or Treasury.Burn, so value
// is conserved across the system.
type Coin struct {
	amount uint64
}

// Amount returns the coin's value in base units.
func (c Coin) Amount() uint64 {
	return c.amount
}

// Merge combines two coins into one. Used to build the single claim payout
// from principal and reward.
func (c Coin) Merge(other Coin) Coin {
	return Coin{amount: c.amount + other.amount}
}

// Zero returns an empty coin.
func Zero() Coin {
	return Coin{}
}

// Balance holds custody of value. The zero value is an empty balance.
type Balance struct {
	amount uint64
}

// Amount returns the held value in base units.
func (b *Balance) Amount() uint64 {
	return b.amount
}

// Deposit absorbs a coin into the balance and returns the new total.
func (b *Balance) Deposit(c Coin) uint64 {
	b.amount += c.amount
	return b.amount
}

// Withdraw splits amount out of the balance as a coin. Fails with
// sentinel.ErrInsufficientBalance when amount exceeds the held value.
func (b *Balance) Withdraw(amount uint64) (Coin, error) {
	if amount > b.amount {
		return Coin{}, fmt.Errorf("withdraw %d from balance %d: %w", amount, b.amount, sentinel.ErrInsufficientBalance)
	}
	b.amount -= amount
	return Coin{amount: amount}, nil
}

// Treasury enforces the fixed total supply. Minted coins circulate until
// burned; Minted() never exceeds MaxSupply().
type Treasury struct {
	maxSupply uint64
	minted    uint64
}

// NewTreasury creates a treasury with the given supply cap in base units.
func NewTreasury(maxSupply uint64) *Treasury {
	return &Treasury{maxSupply: maxSupply}
}

// Mint issues a new coin. Fails with sentinel.ErrSupplyExhausted when the cap
// would be exceeded.
func (t *Treasury) Mint(amount uint64) (Coin, error) {
	if amount > t.maxSupply-t.minted {
		return Coin{}, fmt.Errorf("mint %d with %d remaining: %w", amount, t.maxSupply-t.minted, sentinel.ErrSupplyExhausted)
	}
	t.minted += amount
	return Coin{amount: amount}, nil
}

// Burn destroys a coin and returns its amount.
func (t *Treasury) Burn(c Coin) uint64 {
	t.minted -= c.amount
	return c.amount
}

// Minted returns the circulating supply in base units.
func (t *Treasury) Minted() uint64 {
	return t.minted
}

// MaxSupply returns the supply cap in base units.
func (t *Treasury) MaxSupply() uint64 {
	return t.maxSupply
}
