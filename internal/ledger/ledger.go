package ledger

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models/events"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/storage"
	"github.com/shopspring/decimal"
)

// Ledger is the engine orchestrating the account, frozen-balance and
// transaction tables. It owns all three exclusively; callers only ever reach
// them through the operations below.
//
// Concurrency model: each account row carries its own mutex, so operations on
// distinct accounts run in parallel. A transfer locks both participants in
// ascending account-id order, which rules out deadlock against the reverse
// transfer. The transfer-id allocator has its own mutex and is never held
// together with an account lock.
type Ledger struct {
	accounts     storage.AccountsTable
	frozen       storage.FrozenBalancesTable
	transactions storage.TransactionsTable

	transferMu  sync.Mutex // guards transferSeq only
	transferSeq uint64

	publisher interfaces.EventPublisher
	topic     string
	archive   interfaces.TransactionArchive
}

// Option configures optional sinks on a Ledger.
type Option func(*Ledger)

// WithPublisher makes the ledger publish a TransactionRecorded event to topic
// for every appended record. Publishing is best-effort: failures are logged
// and never change the outcome of an operation.
func WithPublisher(publisher interfaces.EventPublisher, topic string) Option {
	return func(l *Ledger) {
		l.publisher = publisher
		l.topic = topic
	}
}

// WithArchive makes the ledger mirror every appended record into the archive.
// Archiving is best-effort, like event publishing.
func WithArchive(archive interfaces.TransactionArchive) Option {
	return func(l *Ledger) {
		l.archive = archive
	}
}

// New creates an empty ledger. Account ids and freeze ids start at 1.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts:     storage.NewAccountsTable(),
		frozen:       storage.NewFrozenBalancesTable(),
		transactions: storage.NewTransactionsTable(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateAccount opens a new account with a zero balance. It always succeeds.
func (l *Ledger) CreateAccount() (uint64, models.Status) {
	id := l.accounts.Insert(models.NewAccount())
	return id, models.Success
}

// GetAccountBalance reads the balance under the account's lock so the caller
// gets a consistent snapshot.
func (l *Ledger) GetAccountBalance(accountID uint64) (decimal.Decimal, models.Status) {
	account, ok := l.accounts.Lookup(accountID)
	if !ok {
		return decimal.Zero, models.InvalidAccount
	}

	account.Lock()
	defer account.Unlock()
	return account.Balance(), models.Success
}

// AddFunds credits the account. The attempt is recorded even when the account
// does not exist.
func (l *Ledger) AddFunds(accountID uint64, amount decimal.Decimal) models.Status {
	status := models.Success
	row := models.NewTransactionRow(accountID, amount, models.TxAddFunds, models.SubRegular)

	if account, ok := l.accounts.Lookup(accountID); ok {
		account.Lock()
		account.SetBalance(account.Balance().Add(amount))
		account.Unlock()
	} else {
		row.Reject(models.ReasonInvalidAccount)
		status = models.InvalidAccount
	}

	l.append(row)
	return status
}

// RemoveFunds debits the account. A debit larger than the balance is rejected
// with InsufficientFunds and leaves the balance untouched.
func (l *Ledger) RemoveFunds(accountID uint64, amount decimal.Decimal) models.Status {
	status := models.Success
	row := models.NewTransactionRow(accountID, amount, models.TxRemoveFunds, models.SubRegular)

	if account, ok := l.accounts.Lookup(accountID); ok {
		account.Lock()
		if amount.GreaterThan(account.Balance()) {
			row.Reject(models.ReasonInsufficientFunds)
			status = models.InsufficientFunds
		} else {
			account.SetBalance(account.Balance().Sub(amount))
		}
		account.Unlock()
	} else {
		row.Reject(models.ReasonInvalidAccount)
		status = models.InvalidAccount
	}

	l.append(row)
	return status
}

// TransferFunds moves amount from src to dst as one atomic step. Whatever the
// outcome, exactly two correlated records are appended: the debit leg on src
// and the credit leg on dst, sharing a fresh transfer id.
func (l *Ledger) TransferFunds(srcAccountID, dstAccountID uint64, amount decimal.Decimal) models.Status {
	status := models.Success
	debit := models.NewTransactionRow(srcAccountID, amount, models.TxRemoveFunds, models.SubTransfer)
	credit := models.NewTransactionRow(dstAccountID, amount, models.TxAddFunds, models.SubTransfer)

	transferID := l.nextTransferID()
	debit.TransferID = transferID
	credit.TransferID = transferID

	src, srcOK := l.accounts.Lookup(srcAccountID)
	dst, dstOK := l.accounts.Lookup(dstAccountID)
	if srcOK && dstOK {
		// Lock the lower account id first so two opposing transfers always
		// contend in the same order. A self-transfer locks once.
		first, second := src, dst
		if srcAccountID > dstAccountID {
			first, second = dst, src
		}
		first.Lock()
		if second != first {
			second.Lock()
		}

		if amount.GreaterThan(src.Balance()) {
			debit.Reject(models.ReasonInsufficientFunds)
			credit.Reject(models.ReasonInsufficientFunds)
			status = models.InsufficientFunds
		} else {
			src.SetBalance(src.Balance().Sub(amount))
			dst.SetBalance(dst.Balance().Add(amount))
		}

		if second != first {
			second.Unlock()
		}
		first.Unlock()
	} else {
		debit.Reject(models.ReasonInvalidAccount)
		credit.Reject(models.ReasonInvalidAccount)
		status = models.InvalidAccount
	}

	l.append(debit, credit)
	return status
}

// FreezeFunds moves amount out of the spendable balance into a new frozen
// balance. On success the returned freeze id is non-zero; on rejection it is
// 0 and no freeze row is created.
func (l *Ledger) FreezeFunds(accountID uint64, amount decimal.Decimal) (uint64, models.Status) {
	status := models.Success
	var freezeID uint64
	row := models.NewTransactionRow(accountID, amount, models.TxRemoveFunds, models.SubFreeze)

	if account, ok := l.accounts.Lookup(accountID); ok {
		account.Lock()
		if amount.GreaterThan(account.Balance()) {
			row.Reject(models.ReasonInsufficientFunds)
			status = models.InsufficientFunds
		} else {
			account.SetBalance(account.Balance().Sub(amount))
			freezeID = l.frozen.Insert(models.FrozenBalance{AccountID: accountID, Amount: amount})
		}
		account.Unlock()
	} else {
		row.Reject(models.ReasonInvalidAccount)
		status = models.InvalidAccount
	}

	l.append(row)
	return freezeID, status
}

// UnfreezeFunds releases the frozen balance identified by freezeID back into
// the account and deletes the freeze row, returning the released amount. An
// unknown freeze id is rejected with InvalidFreezeID and a zero amount.
//
// When the freeze exists but belongs to a different account, the call is
// rejected with InvalidAccount: no balance moves and the freeze row stays in
// place for its rightful owner, yet the frozen amount is reported back.
func (l *Ledger) UnfreezeFunds(accountID, freezeID uint64) (decimal.Decimal, models.Status) {
	status := models.Success
	balance := decimal.Zero
	row := models.NewTransactionRow(accountID, decimal.Zero, models.TxAddFunds, models.SubUnfreeze)

	if account, ok := l.accounts.Lookup(accountID); ok {
		account.Lock()
		if frozen, ok := l.frozen.Lookup(freezeID); ok {
			balance = frozen.Amount
			if frozen.AccountID != accountID {
				row.Reject(models.ReasonInvalidAccount)
				status = models.InvalidAccount
			} else {
				account.SetBalance(account.Balance().Add(frozen.Amount))
				l.frozen.Delete(freezeID)
			}
		} else {
			row.Reject(models.ReasonInvalidFreezeID)
			status = models.InvalidFreezeID
		}
		account.Unlock()
	} else {
		row.Reject(models.ReasonInvalidAccount)
		status = models.InvalidAccount
	}

	l.append(row)
	return balance, status
}

// GetLedger returns the full audit trail, oldest first, as a snapshot the
// caller may keep.
func (l *Ledger) GetLedger() []models.TransactionData {
	rows := l.transactions.All()
	result := make([]models.TransactionData, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.DataFromRow(row))
	}
	return result
}

// nextTransferID allocates a fresh transfer id shared by the two legs of one
// transfer. Ids start at 1; 0 marks a non-transfer record.
func (l *Ledger) nextTransferID() uint64 {
	l.transferMu.Lock()
	defer l.transferMu.Unlock()

	l.transferSeq++
	return l.transferSeq
}

// append writes the rows to the transaction log and feeds the optional sinks.
// It runs after all account locks have been released.
func (l *Ledger) append(rows ...models.TransactionRow) {
	for _, row := range rows {
		l.transactions.Insert(row)
		l.emit(row)
	}
}

func (l *Ledger) emit(row models.TransactionRow) {
	if l.archive == nil && l.publisher == nil {
		return
	}

	data := models.DataFromRow(row)
	if l.archive != nil {
		if err := l.archive.Archive(context.Background(), data); err != nil {
			log.Printf("ledger: archive write failed: %v", err)
		}
	}
	if l.publisher != nil {
		event := events.TransactionRecorded{
			EventID:      uuid.New().String(),
			AccountID:    data.AccountID,
			Amount:       data.Amount,
			Type:         data.Type.String(),
			SubType:      data.SubType.String(),
			Status:       data.Status.String(),
			RejectReason: data.RejectReason.String(),
			TransferID:   data.TransferID,
			OccurredAt:   data.Timestamp,
		}
		if err := l.publisher.Publish(l.topic, event); err != nil {
			log.Printf("ledger: event publish failed: %v", err)
		}
	}
}

// Compile-time check: Ledger implements the public interface.
var _ interfaces.Ledger = (*Ledger)(nil)
