package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the direction of a transaction: funds in or funds out.
type TxType uint8

const (
	TxAddFunds TxType = iota + 1
	TxRemoveFunds
)

func (t TxType) String() string {
	switch t {
	case TxAddFunds:
		return "AddFunds"
	case TxRemoveFunds:
		return "RemoveFunds"
	default:
		return "Unknown"
	}
}

// TxSubType tells which operation produced the transaction.
type TxSubType uint8

const (
	SubRegular TxSubType = iota + 1
	SubTransfer
	SubFreeze
	SubUnfreeze
)

func (t TxSubType) String() string {
	switch t {
	case SubRegular:
		return "Regular"
	case SubTransfer:
		return "TransferFunds"
	case SubFreeze:
		return "Freeze"
	case SubUnfreeze:
		return "Unfreeze"
	default:
		return "Unknown"
	}
}

// Approval is the recorded outcome of the operation.
type Approval uint8

const (
	Approved Approval = iota + 1
	Rejected
)

func (a Approval) String() string {
	switch a {
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// RejectReason is the specific cause recorded for a rejected transaction.
// Approved transactions carry ReasonNotRelevant.
type RejectReason uint8

const (
	ReasonNotRelevant RejectReason = iota + 1
	ReasonInvalidAccount
	ReasonInsufficientFunds
	ReasonInvalidFreezeID
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNotRelevant:
		return "NotRelevant"
	case ReasonInvalidAccount:
		return "InvalidAccount"
	case ReasonInsufficientFunds:
		return "InsufficientFunds"
	case ReasonInvalidFreezeID:
		return "InvalidFreezeID"
	default:
		return "Unknown"
	}
}

// TransactionRow is one immutable entry in the transaction log. Every ledger
// operation appends one row per affected account, rejected or not; a transfer
// appends two rows sharing a TransferID.
type TransactionRow struct {
	AccountID    uint64
	Amount       decimal.Decimal
	Type         TxType
	SubType      TxSubType
	Timestamp    time.Time
	Status       Approval
	RejectReason RejectReason
	TransferID   uint64 // 0 unless the row is a transfer leg
}

// NewTransactionRow builds a row that is approved until Reject is called.
func NewTransactionRow(accountID uint64, amount decimal.Decimal, typ TxType, subType TxSubType) TransactionRow {
	return TransactionRow{
		AccountID:    accountID,
		Amount:       amount,
		Type:         typ,
		SubType:      subType,
		Timestamp:    time.Now(),
		Status:       Approved,
		RejectReason: ReasonNotRelevant,
	}
}

// Reject marks the row rejected with the given reason.
func (r *TransactionRow) Reject(reason RejectReason) {
	r.Status = Rejected
	r.RejectReason = reason
}
