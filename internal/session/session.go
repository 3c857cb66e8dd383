// Package session persists the current CLI login as a small JSON file in
// the app data directory, standing in for the interactive login loop of
// the legacy terminal application.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileName = "session.json"

var ErrNoSession = errors.New("not logged in")

type Kind string

const (
	KindCustomer Kind = "customer"
	KindStaff    Kind = "staff"
)

type Session struct {
	Kind       Kind   `json:"kind"`
	ID         string `json:"id"`
	Username   string `json:"username"`
	LoggedInAt int64  `json:"logged_in_at"`
}

func New(kind Kind, id, username string) *Session {
	return &Session{
		Kind:       kind,
		ID:         id,
		Username:   username,
		LoggedInAt: time.Now().Unix(),
	}
}

func Save(dir string, s *Session) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func Load(dir string) (*Session, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	if s.ID == "" {
		return nil, ErrNoSession
	}
	return s, nil
}

func Clear(dir string) error {
	err := os.Remove(filepath.Join(dir, fileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
