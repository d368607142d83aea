package interfaces

import (
	"context"

	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models"
)

// TransactionArchive mirrors appended transaction records into secondary
// storage. The in-memory log stays the source of truth; an archive failure
// never affects ledger state.
type TransactionArchive interface {
	Archive(ctx context.Context, record models.TransactionData) error
}
