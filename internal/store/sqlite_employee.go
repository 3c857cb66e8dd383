package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateEmployee(emp *Employee) error {
	_, err := s.db.Exec(`
		INSERT INTO employees (id, username, password_hash, first_name, last_name, role, status)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`, emp.ID, emp.Username, emp.PasswordHash, emp.FirstName, emp.LastName, emp.Role, emp.Status)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return fmt.Errorf("failed to create employee '%s': %w", emp.Username, ErrUsernameTaken)
			}
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return nil
}

func (s *Store) GetEmployeeByUsername(username string) (*Employee, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, role, status
		FROM employees
		WHERE username = ?
	`, username)

	emp := &Employee{}

	err := row.Scan(
		&emp.ID, &emp.Username, &emp.PasswordHash,
		&emp.FirstName, &emp.LastName, &emp.Role, &emp.Status,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee '%s': %w", username, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query employee '%s': %w", username, err)
	}

	return emp, nil
}
