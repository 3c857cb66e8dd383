package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
)

// Standard product rates carried over from the legacy branch system.
// Rates are stored with the account but interest is never accrued here.
var (
	savingsRate    = decimal.RequireFromString("0.05")
	creditCardRate = decimal.RequireFromString("0.025")
)

type AccountService struct {
	repo store.Repository
	now  func() time.Time
}

func NewAccountService(repo store.Repository) *AccountService {
	return &AccountService{repo: repo, now: time.Now}
}

// NewAccountRecord builds an active account of the given type with the
// product defaults for that type. It does not persist anything.
func NewAccountRecord(individualID, accType string, now time.Time) (*store.Account, error) {
	acc := &store.Account{
		ID:           uuid.NewString(),
		IndividualID: individualID,
		Type:         accType,
		InterestRate: decimal.Zero,
		Status:       constants.StatusActive,
		CreatedAt:    now.Unix(),
	}

	switch accType {
	case constants.TypeChecking:
	case constants.TypeSavings:
		acc.InterestRate = savingsRate
	case constants.TypeCreditCard:
		acc.Liability = true
		acc.InterestRate = creditCardRate
	default:
		return nil, fmt.Errorf("unknown account type '%s' (must be checking, savings or creditcard)", accType)
	}

	return acc, nil
}

// Open creates an account for an existing customer. A positive initial
// deposit is written as the first ledger row in the same store transaction
// that creates the account, so a freshly opened account already satisfies
// the balance-equals-history invariant.
func (as *AccountService) Open(individualID, accType string, initialDeposit int64) (*store.Account, error) {
	if initialDeposit < 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := as.repo.GetIndividualByID(individualID); err != nil {
		return nil, err
	}

	acc, err := NewAccountRecord(individualID, accType, as.now())
	if err != nil {
		return nil, err
	}
	acc.Balance = initialDeposit

	err = as.repo.ExecTx(func(r store.Repository) error {
		if err := r.CreateAccount(acc); err != nil {
			return err
		}
		if initialDeposit == 0 {
			return nil
		}
		return r.AppendTransaction(&store.Transaction{
			ID:               uuid.NewString(),
			AccountID:        acc.ID,
			Type:             constants.TxDeposit,
			Amount:           initialDeposit,
			ResultingBalance: initialDeposit,
			Status:           constants.TxCommitted,
			Memo:             "Opening deposit",
			CreatedAt:        acc.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	return acc, nil
}

// Close marks an account closed. Policy: an account holding funds cannot
// be closed. The transition is one-way and compare-and-set, so a deposit
// racing with the close loses exactly one of the two writes.
func (as *AccountService) Close(accountID string) error {
	var lastErr error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		acc, err := as.repo.GetAccountByID(accountID)
		if err != nil {
			return err
		}
		if acc.Status != constants.StatusActive {
			return fmt.Errorf("account %s: %w", acc.ID, ErrAccountClosed)
		}
		if acc.Balance != 0 {
			return fmt.Errorf("account %s holds %d: %w", acc.ID, acc.Balance, ErrAccountNotEmpty)
		}

		err = as.repo.UpdateAccountStatus(acc.ID, constants.StatusClosed, acc.Version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrConflict) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrTransient, lastErr)
}

func (as *AccountService) Get(accountID string) (*store.Account, error) {
	return as.repo.GetAccountByID(accountID)
}

func (as *AccountService) ListByIndividual(individualID string) ([]*store.Account, error) {
	return as.repo.GetAccountsByIndividual(individualID)
}

// ActiveByIndividual filters the customer's accounts down to the ones that
// still take transactions.
func (as *AccountService) ActiveByIndividual(individualID string) ([]*store.Account, error) {
	accounts, err := as.repo.GetAccountsByIndividual(individualID)
	if err != nil {
		return nil, err
	}

	var active []*store.Account
	for _, acc := range accounts {
		if acc.Status == constants.StatusActive {
			active = append(active, acc)
		}
	}
	return active, nil
}
