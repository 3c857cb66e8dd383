package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateIndividual(ind *Individual) error {
	_, err := s.db.Exec(`
		INSERT INTO individuals (id, username, password_hash, first_name, last_name, age, address, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, ind.ID, ind.Username, ind.PasswordHash, ind.FirstName, ind.LastName, ind.Age, ind.Address, ind.Status)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return fmt.Errorf("failed to create customer '%s': %w", ind.Username, ErrUsernameTaken)
			}
		}
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}

func (s *Store) GetIndividualByID(id string) (*Individual, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, age, address, status
		FROM individuals
		WHERE id = ?
	`, id)
	return scanIndividual(row, id)
}

func (s *Store) GetIndividualByUsername(username string) (*Individual, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, age, address, status
		FROM individuals
		WHERE username = ?
	`, username)
	return scanIndividual(row, username)
}

func scanIndividual(row *sql.Row, key string) (*Individual, error) {
	ind := &Individual{}

	err := row.Scan(
		&ind.ID, &ind.Username, &ind.PasswordHash,
		&ind.FirstName, &ind.LastName, &ind.Age,
		&ind.Address, &ind.Status,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer '%s': %w", key, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query customer '%s': %w", key, err)
	}

	return ind, nil
}

func (s *Store) UsernameExists(username string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM individuals WHERE username = ?)", username)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return exists, nil
}
