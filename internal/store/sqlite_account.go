package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

func (s *Store) CreateAccount(acc *Account) error {
	_, err := s.db.Exec(`
		INSERT INTO accounts (id, individual_id, type, liability, interest_rate, balance, status, version, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, acc.ID, acc.IndividualID, acc.Type, acc.Liability, acc.InterestRate.String(),
		acc.Balance, acc.Status, acc.Version, acc.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

func (s *Store) GetAccountByID(id string) (*Account, error) {
	row := s.db.QueryRow(`
		SELECT id, individual_id, type, liability, interest_rate, balance, status, version, created_at
		FROM accounts
		WHERE id = ?
	`, id)

	acc, err := scanAccount(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", id, err)
	}

	return acc, nil
}

func (s *Store) GetAccountsByIndividual(individualID string) ([]*Account, error) {
	rows, err := s.db.Query(`
		SELECT id, individual_id, type, liability, interest_rate, balance, status, version, created_at
		FROM accounts
		WHERE individual_id = ?
		ORDER BY created_at, rowid
	`, individualID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		acc, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func scanAccount(scan func(dest ...any) error) (*Account, error) {
	acc := &Account{}
	var rate string

	err := scan(
		&acc.ID, &acc.IndividualID, &acc.Type,
		&acc.Liability, &rate, &acc.Balance,
		&acc.Status, &acc.Version, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	acc.InterestRate, err = decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("bad interest rate %q on account %s: %w", rate, acc.ID, err)
	}

	return acc, nil
}

// UpdateAccountBalance is a compare-and-set on the account row: the write
// only lands when the caller still holds the version it read. A lost race
// surfaces as ErrConflict so the engine can re-read and retry.
func (s *Store) UpdateAccountBalance(id string, newBalance, expectedVersion int64) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET balance = ?, version = version + 1
		WHERE id = ? AND version = ?
	`, newBalance, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	return s.checkVersionedUpdate(result, id)
}

func (s *Store) UpdateAccountStatus(id, status string, expectedVersion int64) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET status = ?, version = version + 1
		WHERE id = ? AND version = ?
	`, status, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}

	return s.checkVersionedUpdate(result, id)
}

func (s *Store) checkVersionedUpdate(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)", id)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("account '%s': %w", id, ErrRecordNotFound)
	}
	return fmt.Errorf("account '%s': %w", id, ErrConflict)
}
