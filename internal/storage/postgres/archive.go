package postgres

import (
	"context"
	"database/sql"

	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models"
)

// Archive mirrors the transaction log into Postgres for offline inspection.
// The in-memory log remains the source of truth; the archive is write-behind
// and is never read back by the engine.
type Archive struct {
	db *sql.DB
}

func NewArchive(db *sql.DB) *Archive {
	return &Archive{
		db: db,
	}
}

func (a *Archive) Archive(ctx context.Context, record models.TransactionData) error {
	const query = `INSERT INTO ledger_transactions
	(account_id, amount, type, sub_type, status, reject_reason, transfer_id, recorded_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err := a.db.ExecContext(ctx, query,
		record.AccountID,
		record.Amount,
		record.Type.String(),
		record.SubType.String(),
		record.Status.String(),
		record.RejectReason.String(),
		record.TransferID,
		record.Timestamp,
	)
	return err
}

// ReadAll returns the archived records, oldest first. Used by reconciliation
// tooling, not by the engine.
func (a *Archive) ReadAll(ctx context.Context) ([]models.TransactionData, error) {
	const query = `SELECT account_id, amount, type, sub_type, status, reject_reason, transfer_id, recorded_at
	FROM ledger_transactions ORDER BY recorded_at`

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.TransactionData
	for rows.Next() {
		var record models.TransactionData
		var typ, subType, status, reason string
		if err := rows.Scan(
			&record.AccountID,
			&record.Amount,
			&typ,
			&subType,
			&status,
			&reason,
			&record.TransferID,
			&record.Timestamp,
		); err != nil {
			return nil, err
		}
		record.Type = models.ParseTxType(typ)
		record.SubType = models.ParseTxSubType(subType)
		record.Status = models.ParseApproval(status)
		record.RejectReason = models.ParseRejectReason(reason)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Compile-time check: Archive implements TransactionArchive.
var _ interfaces.TransactionArchive = (*Archive)(nil)
