package models

import "github.com/shopspring/decimal"

// FrozenBalance records funds held out of an account's spendable balance.
// The amount is fixed at creation; the row exists from a successful freeze
// until the matching unfreeze deletes it, so a freeze id is single-use.
type FrozenBalance struct {
	AccountID uint64
	Amount    decimal.Decimal
}
