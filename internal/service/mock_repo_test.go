package service

import (
	"fmt"

	"github.com/tellerbank/teller/internal/store"
)

// memRepo is an in-memory store.Repository with the same contract the
// SQLite store honors: reads return copies, version compare-and-set on
// account writes, and ExecTx rolls everything back on error.
type memRepo struct {
	individuals  map[string]*store.Individual
	employees    map[string]*store.Employee
	accounts     map[string]*store.Account
	accountOrder []string
	transactions []*store.Transaction

	// test hooks
	failAppend       error
	beforeBalanceCAS func(m *memRepo)
	beforeTx         func(m *memRepo)
}

func newMemRepo() *memRepo {
	return &memRepo{
		individuals: make(map[string]*store.Individual),
		employees:   make(map[string]*store.Employee),
		accounts:    make(map[string]*store.Account),
	}
}

func (m *memRepo) CreateIndividual(ind *store.Individual) error {
	for _, existing := range m.individuals {
		if existing.Username == ind.Username {
			return fmt.Errorf("customer '%s': %w", ind.Username, store.ErrUsernameTaken)
		}
	}
	cp := *ind
	m.individuals[ind.ID] = &cp
	return nil
}

func (m *memRepo) GetIndividualByID(id string) (*store.Individual, error) {
	ind, ok := m.individuals[id]
	if !ok {
		return nil, fmt.Errorf("customer '%s': %w", id, store.ErrRecordNotFound)
	}
	cp := *ind
	return &cp, nil
}

func (m *memRepo) GetIndividualByUsername(username string) (*store.Individual, error) {
	for _, ind := range m.individuals {
		if ind.Username == username {
			cp := *ind
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("customer '%s': %w", username, store.ErrRecordNotFound)
}

func (m *memRepo) UsernameExists(username string) (bool, error) {
	_, err := m.GetIndividualByUsername(username)
	return err == nil, nil
}

func (m *memRepo) CreateEmployee(emp *store.Employee) error {
	for _, existing := range m.employees {
		if existing.Username == emp.Username {
			return fmt.Errorf("employee '%s': %w", emp.Username, store.ErrUsernameTaken)
		}
	}
	cp := *emp
	m.employees[emp.ID] = &cp
	return nil
}

func (m *memRepo) GetEmployeeByUsername(username string) (*store.Employee, error) {
	for _, emp := range m.employees {
		if emp.Username == username {
			cp := *emp
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("employee '%s': %w", username, store.ErrRecordNotFound)
}

func (m *memRepo) CreateAccount(acc *store.Account) error {
	cp := *acc
	m.accounts[acc.ID] = &cp
	m.accountOrder = append(m.accountOrder, acc.ID)
	return nil
}

func (m *memRepo) GetAccountByID(id string) (*store.Account, error) {
	acc, ok := m.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account '%s': %w", id, store.ErrRecordNotFound)
	}
	cp := *acc
	return &cp, nil
}

func (m *memRepo) GetAccountsByIndividual(individualID string) ([]*store.Account, error) {
	var out []*store.Account
	for _, id := range m.accountOrder {
		acc := m.accounts[id]
		if acc.IndividualID == individualID {
			cp := *acc
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateAccountBalance(id string, newBalance, expectedVersion int64) error {
	if m.beforeBalanceCAS != nil {
		m.beforeBalanceCAS(m)
	}

	acc, ok := m.accounts[id]
	if !ok {
		return fmt.Errorf("account '%s': %w", id, store.ErrRecordNotFound)
	}
	if acc.Version != expectedVersion {
		return fmt.Errorf("account '%s': %w", id, store.ErrConflict)
	}
	acc.Balance = newBalance
	acc.Version++
	return nil
}

func (m *memRepo) UpdateAccountStatus(id, status string, expectedVersion int64) error {
	acc, ok := m.accounts[id]
	if !ok {
		return fmt.Errorf("account '%s': %w", id, store.ErrRecordNotFound)
	}
	if acc.Version != expectedVersion {
		return fmt.Errorf("account '%s': %w", id, store.ErrConflict)
	}
	acc.Status = status
	acc.Version++
	return nil
}

func (m *memRepo) AppendTransaction(tx *store.Transaction) error {
	if m.failAppend != nil {
		return m.failAppend
	}
	cp := *tx
	m.transactions = append(m.transactions, &cp)
	return nil
}

func (m *memRepo) GetTransactionsByAccount(accountID string, limit int) ([]*store.Transaction, error) {
	var out []*store.Transaction
	for _, tx := range m.transactions {
		if tx.AccountID != accountID {
			continue
		}
		cp := *tx
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memRepo) SumCommittedAmounts(accountID string) (int64, error) {
	var sum int64
	for _, tx := range m.transactions {
		if tx.AccountID != accountID || tx.Status != "committed" {
			continue
		}
		if tx.Type == "deposit" {
			sum += tx.Amount
		} else {
			sum -= tx.Amount
		}
	}
	return sum, nil
}

// ExecTx snapshots all state, runs fn, and restores the snapshot when fn
// fails, mirroring a database rollback.
func (m *memRepo) ExecTx(fn func(store.Repository) error) error {
	if m.beforeTx != nil {
		m.beforeTx(m)
	}

	snapInds := make(map[string]*store.Individual, len(m.individuals))
	for k, v := range m.individuals {
		cp := *v
		snapInds[k] = &cp
	}
	snapEmps := make(map[string]*store.Employee, len(m.employees))
	for k, v := range m.employees {
		cp := *v
		snapEmps[k] = &cp
	}
	snapAccs := make(map[string]*store.Account, len(m.accounts))
	for k, v := range m.accounts {
		cp := *v
		snapAccs[k] = &cp
	}
	snapOrder := append([]string(nil), m.accountOrder...)
	snapTxs := make([]*store.Transaction, len(m.transactions))
	for i, tx := range m.transactions {
		cp := *tx
		snapTxs[i] = &cp
	}

	if err := fn(m); err != nil {
		m.individuals = snapInds
		m.employees = snapEmps
		m.accounts = snapAccs
		m.accountOrder = snapOrder
		m.transactions = snapTxs
		return err
	}
	return nil
}

func (m *memRepo) Close() error { return nil }
