package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecorded is emitted after a transaction row has been appended to
// the ledger, approved or rejected.
type TransactionRecorded struct {
	EventID      string          `json:"event_id"`
	AccountID    uint64          `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	SubType      string          `json:"sub_type"`
	Status       string          `json:"status"`
	RejectReason string          `json:"reject_reason"`
	TransferID   uint64          `json:"transfer_id"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
