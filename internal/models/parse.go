package models

// Parse helpers invert the String renderings. Unrecognized input yields the
// zero value, which none of the valid constants use.

func ParseTxType(s string) TxType {
	switch s {
	case "AddFunds":
		return TxAddFunds
	case "RemoveFunds":
		return TxRemoveFunds
	default:
		return 0
	}
}

func ParseTxSubType(s string) TxSubType {
	switch s {
	case "Regular":
		return SubRegular
	case "TransferFunds":
		return SubTransfer
	case "Freeze":
		return SubFreeze
	case "Unfreeze":
		return SubUnfreeze
	default:
		return 0
	}
}

func ParseApproval(s string) Approval {
	switch s {
	case "Approved":
		return Approved
	case "Rejected":
		return Rejected
	default:
		return 0
	}
}

func ParseRejectReason(s string) RejectReason {
	switch s {
	case "NotRelevant":
		return ReasonNotRelevant
	case "InvalidAccount":
		return ReasonInvalidAccount
	case "InsufficientFunds":
		return ReasonInsufficientFunds
	case "InvalidFreezeID":
		return ReasonInvalidFreezeID
	default:
		return 0
	}
}
