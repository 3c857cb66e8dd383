package store

import (
	"database/sql"
	"fmt"
)

func (s *Store) AppendTransaction(tx *Transaction) error {
	_, err := s.db.Exec(`
		INSERT INTO transactions (id, account_id, type, amount, resulting_balance, status, memo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, tx.ID, tx.AccountID, tx.Type, tx.Amount, tx.ResultingBalance, tx.Status, tx.Memo, tx.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	return nil
}

// GetTransactionsByAccount returns the account ledger in application order,
// oldest first. A limit <= 0 returns the full history.
func (s *Store) GetTransactionsByAccount(accountID string, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(`
		SELECT id, account_id, type, amount, resulting_balance, status, memo, created_at
		FROM transactions
		WHERE account_id = ?
		ORDER BY created_at, rowid
		LIMIT ?
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*Transaction
	for rows.Next() {
		tx := &Transaction{}
		err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.Type, &tx.Amount,
			&tx.ResultingBalance, &tx.Status, &tx.Memo, &tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// SumCommittedAmounts recomputes an account balance from its ledger:
// deposits count positive, withdrawals negative, rejected rows not at all.
func (s *Store) SumCommittedAmounts(accountID string) (int64, error) {
	var sum sql.NullInt64
	err := s.db.QueryRow(`
		SELECT SUM(CASE WHEN type = 'deposit' THEN amount ELSE -amount END)
		FROM transactions
		WHERE account_id = ? AND status = 'committed'
	`, accountID).Scan(&sum)

	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	if sum.Valid {
		return sum.Int64, nil
	}
	return 0, nil
}
