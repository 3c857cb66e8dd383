package constants

const (
	// Transaction types. Amounts are always stored positive; the type
	// carries the direction.
	TxDeposit    = "deposit"
	TxWithdrawal = "withdrawal"

	// Transaction status. Rejected rows are audit-only and never count
	// toward an account balance.
	TxCommitted = "committed"
	TxRejected  = "rejected"

	// Date Layout
	DateFormat = "2006-01-02"
)
