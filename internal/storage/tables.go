package storage

import (
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/models"
	"github.com/sheikh-saqib/concurrent-funds-ledger/internal/table"
)

// AccountsTable stores the mutable account rows, keyed by account id.
// Rows are pointers so the per-account lock lives with the row itself.
type AccountsTable struct {
	*table.Table[*models.Account]
}

func NewAccountsTable() AccountsTable {
	return AccountsTable{table.New[*models.Account]()}
}

// FrozenBalancesTable stores the live freezes, keyed by freeze id.
type FrozenBalancesTable struct {
	*table.Table[models.FrozenBalance]
}

func NewFrozenBalancesTable() FrozenBalancesTable {
	return FrozenBalancesTable{table.New[models.FrozenBalance]()}
}

// TransactionsTable is the append-only transaction log. Nothing ever deletes
// from it; its insertion order is the audit order GetLedger reports.
type TransactionsTable struct {
	*table.Table[models.TransactionRow]
}

func NewTransactionsTable() TransactionsTable {
	return TransactionsTable{table.New[models.TransactionRow]()}
}
