package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionData is the read-only projection of a transaction log row that
// GetLedger hands out for inspection and printing.
type TransactionData struct {
	AccountID    uint64          `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Type         TxType          `json:"type"`
	SubType      TxSubType       `json:"sub_type"`
	Timestamp    time.Time       `json:"timestamp"`
	Status       Approval        `json:"status"`
	RejectReason RejectReason    `json:"reject_reason"`
	TransferID   uint64          `json:"transfer_id"`
}

// DataFromRow converts a log row into its external projection.
func DataFromRow(row TransactionRow) TransactionData {
	return TransactionData{
		AccountID:    row.AccountID,
		Amount:       row.Amount,
		Type:         row.Type,
		SubType:      row.SubType,
		Timestamp:    row.Timestamp,
		Status:       row.Status,
		RejectReason: row.RejectReason,
		TransferID:   row.TransferID,
	}
}

func (d TransactionData) String() string {
	return fmt.Sprintf("AccountId: %d Amount: %s Type: %s SubType: %s Status: %s RejectReason: %s TransferId: %d TS: %s",
		d.AccountID, d.Amount, d.Type, d.SubType, d.Status, d.RejectReason, d.TransferID, d.Timestamp.Format(time.RFC3339Nano))
}
