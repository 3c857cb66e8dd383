package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tellerbank/teller/internal/config"
	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
)

// maxConflictRetries bounds how often a deposit or withdrawal is retried
// after the account row changed between our read and our write.
const maxConflictRetries = 3

// Engine is the only component allowed to change an account balance.
// Every mutation is a compare-and-set on the account version plus a ledger
// append, committed in a single store transaction, so the balance column
// and the transaction history can never drift apart.
type Engine struct {
	repo store.Repository
	cfg  *config.Config
	now  func() time.Time
}

func NewEngine(repo store.Repository, cfg *config.Config) *Engine {
	return &Engine{repo: repo, cfg: cfg, now: time.Now}
}

func (e *Engine) Deposit(accountID string, amount int64, memo string) (*store.Transaction, error) {
	return e.apply(accountID, constants.TxDeposit, amount, memo)
}

func (e *Engine) Withdraw(accountID string, amount int64, memo string) (*store.Transaction, error) {
	return e.apply(accountID, constants.TxWithdrawal, amount, memo)
}

func (e *Engine) apply(accountID, txType string, amount int64, memo string) (*store.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var lastErr error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		acc, err := e.repo.GetAccountByID(accountID)
		if err != nil {
			return nil, err
		}
		if acc.Status != constants.StatusActive {
			return nil, fmt.Errorf("account %s: %w", acc.ID, ErrAccountClosed)
		}

		var newBalance int64
		switch txType {
		case constants.TxDeposit:
			newBalance = acc.Balance + amount
		case constants.TxWithdrawal:
			if amount > acc.Balance {
				if err := e.recordRejected(acc, txType, amount, memo); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("withdraw %d from balance %d: %w", amount, acc.Balance, ErrInsufficientFunds)
			}
			newBalance = acc.Balance - amount
		default:
			return nil, fmt.Errorf("unknown transaction type %q", txType)
		}

		tx := &store.Transaction{
			ID:               uuid.NewString(),
			AccountID:        acc.ID,
			Type:             txType,
			Amount:           amount,
			ResultingBalance: newBalance,
			Status:           constants.TxCommitted,
			Memo:             memo,
			CreatedAt:        e.now().Unix(),
		}

		err = e.repo.ExecTx(func(r store.Repository) error {
			if err := r.UpdateAccountBalance(acc.ID, newBalance, acc.Version); err != nil {
				return err
			}
			return r.AppendTransaction(tx)
		})
		if err == nil {
			return tx, nil
		}
		if !errors.Is(err, store.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrTransient, lastErr)
}

// recordRejected keeps an audit row for a refused withdrawal when the
// install is configured for it. The resulting balance snapshot is the
// unchanged balance.
func (e *Engine) recordRejected(acc *store.Account, txType string, amount int64, memo string) error {
	if !e.cfg.Audit.RecordRejected {
		return nil
	}

	tx := &store.Transaction{
		ID:               uuid.NewString(),
		AccountID:        acc.ID,
		Type:             txType,
		Amount:           amount,
		ResultingBalance: acc.Balance,
		Status:           constants.TxRejected,
		Memo:             memo,
		CreatedAt:        e.now().Unix(),
	}
	if err := e.repo.AppendTransaction(tx); err != nil {
		return fmt.Errorf("failed to record rejected attempt: %w", err)
	}
	return nil
}

// History returns an account's ledger, oldest first.
func (e *Engine) History(accountID string, limit int) ([]*store.Transaction, error) {
	if _, err := e.repo.GetAccountByID(accountID); err != nil {
		return nil, err
	}
	return e.repo.GetTransactionsByAccount(accountID, limit)
}

// RecomputeBalance sums the committed ledger rows for an account. The
// result must always equal the cached balance column; tests lean on this.
func (e *Engine) RecomputeBalance(accountID string) (int64, error) {
	return e.repo.SumCommittedAmounts(accountID)
}
