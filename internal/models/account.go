package models

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a mutable account row. The embedded mutex serializes every
// balance read and write for this account; the ledger engine acquires it
// around each check-and-mutate and never exposes it to callers.
type Account struct {
	mu       sync.Mutex
	balance  decimal.Decimal
	modified time.Time
}

// NewAccount returns an account with a zero balance.
func NewAccount() *Account {
	return &Account{
		balance:  decimal.Zero,
		modified: time.Now(),
	}
}

func (a *Account) Lock()   { a.mu.Lock() }
func (a *Account) Unlock() { a.mu.Unlock() }

// Balance returns the current balance. The caller must hold the lock.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// SetBalance replaces the balance and stamps the modification time. The
// caller must hold the lock.
func (a *Account) SetBalance(balance decimal.Decimal) {
	a.balance = balance
	a.modified = time.Now()
}

// Modified returns the time of the last balance write. The caller must hold
// the lock.
func (a *Account) Modified() time.Time {
	return a.modified
}
