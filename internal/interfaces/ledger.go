package interfaces

import (
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Ledger is the public surface of the ledger engine. Every operation reports
// its outcome as a models.Status; output values other than the status are
// meaningful only where the operation documents them.
type Ledger interface {
	// CreateAccount opens a new account with a zero balance and returns its id.
	CreateAccount() (uint64, models.Status)

	// GetAccountBalance reads the balance under the account's lock.
	GetAccountBalance(accountID uint64) (decimal.Decimal, models.Status)

	// AddFunds credits the account.
	AddFunds(accountID uint64, amount decimal.Decimal) models.Status

	// RemoveFunds debits the account, rejecting any debit that would push the
	// balance below zero.
	RemoveFunds(accountID uint64, amount decimal.Decimal) models.Status

	// TransferFunds atomically moves amount from src to dst.
	TransferFunds(srcAccountID, dstAccountID uint64, amount decimal.Decimal) models.Status

	// FreezeFunds moves amount from the spendable balance into a new frozen
	// balance and returns the freeze id, or 0 on rejection.
	FreezeFunds(accountID uint64, amount decimal.Decimal) (uint64, models.Status)

	// UnfreezeFunds releases the frozen balance back into the account and
	// returns the released amount.
	UnfreezeFunds(accountID, freezeID uint64) (decimal.Decimal, models.Status)

	// GetLedger returns a snapshot of the full audit trail in append order.
	GetLedger() []models.TransactionData
}
