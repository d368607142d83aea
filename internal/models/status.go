package models

// Status is the outcome of a ledger operation. It is the only failure channel
// across the engine boundary; business rejections are statuses, never errors.
type Status uint8

const (
	Success Status = iota + 1
	InvalidAccount
	InvalidFreezeID
	InsufficientFunds
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case InvalidAccount:
		return "InvalidAccount"
	case InvalidFreezeID:
		return "InvalidFreezeID"
	case InsufficientFunds:
		return "InsufficientFunds"
	default:
		return "Unknown"
	}
}
