package token

import "sync"

// Bank tracks per-account balances outside the pool. It exists so value the
// pool pays out or takes in has a concrete source and destination; the
// staking core itself never reads account balances.
type Bank struct {
	mu       sync.RWMutex
	treasury *Treasury
	accounts map[string]*Balance
}

// NewBank creates a bank backed by the given treasury.
func NewBank(treasury *Treasury) *Bank {
	return &Bank{
		treasury: treasury,
		accounts: make(map[string]*Balance),
	}
}

// MintTo mints new supply directly into an account and returns its new
// balance. Used by the dev faucet.
func (b *Bank) MintTo(addr string, amount uint64) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	coin, err := b.treasury.Mint(amount)
	if err != nil {
		return 0, err
	}
	return b.account(addr).Deposit(coin), nil
}

// WithdrawFrom splits a coin out of an account's balance.
func (b *Bank) WithdrawFrom(addr string, amount uint64) (Coin, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.account(addr).Withdraw(amount)
}

// DepositTo absorbs a coin into an account's balance and returns the new
// total.
func (b *Bank) DepositTo(addr string, c Coin) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.account(addr).Deposit(c)
}

// BalanceOf returns an account's balance; zero for unknown accounts.
func (b *Bank) BalanceOf(addr string) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if acct, ok := b.accounts[addr]; ok {
		return acct.Amount()
	}
	return 0
}

// account returns the balance for addr, creating it on first use. Callers
// must hold b.mu.
func (b *Bank) account(addr string) *Balance {
	acct, ok := b.accounts[addr]
	if !ok {
		acct = &Balance{}
		b.accounts[addr] = acct
	}
	return acct
}
