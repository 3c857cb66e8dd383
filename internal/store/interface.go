package store

type Repository interface {
	// Individual Operations
	CreateIndividual(ind *Individual) error
	GetIndividualByID(id string) (*Individual, error)
	GetIndividualByUsername(username string) (*Individual, error)
	UsernameExists(username string) (bool, error)

	// Employee Operations
	CreateEmployee(emp *Employee) error
	GetEmployeeByUsername(username string) (*Employee, error)

	// Account Operations
	CreateAccount(acc *Account) error
	GetAccountByID(id string) (*Account, error)
	GetAccountsByIndividual(individualID string) ([]*Account, error)
	UpdateAccountBalance(id string, newBalance, expectedVersion int64) error
	UpdateAccountStatus(id, status string, expectedVersion int64) error

	// Transaction Operations. The ledger is append-only: there is no
	// update or delete.
	AppendTransaction(tx *Transaction) error
	GetTransactionsByAccount(accountID string, limit int) ([]*Transaction, error)
	SumCommittedAmounts(accountID string) (int64, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
