package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
)

type IndividualService struct {
	repo store.Repository
	now  func() time.Time
}

func NewIndividualService(repo store.Repository) *IndividualService {
	return &IndividualService{repo: repo, now: time.Now}
}

type SignupInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Age       int
	Address   string
}

// Signup creates the customer record together with the three basic
// accounts (checking, savings, credit card) in one store transaction, the
// same bundle the branch system opens for every new customer.
func (is *IndividualService) Signup(input SignupInput) (*store.Individual, []*store.Account, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPwLen {
		return nil, nil, fmt.Errorf("password must be at least %d characters", constants.MinPwLen)
	}
	if input.Age < constants.MinSignupAge {
		return nil, nil, fmt.Errorf("must be %d or older to open an account", constants.MinSignupAge)
	}

	ind := &store.Individual{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: HashPassword(input.Password),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Age:          input.Age,
		Address:      strings.TrimSpace(input.Address),
		Status:       constants.StatusActive,
	}

	accounts := make([]*store.Account, 0, len(constants.BasicAccountTypes))
	for _, accType := range constants.BasicAccountTypes {
		acc, err := NewAccountRecord(ind.ID, accType, is.now())
		if err != nil {
			return nil, nil, err
		}
		accounts = append(accounts, acc)
	}

	err := is.repo.ExecTx(func(r store.Repository) error {
		if err := r.CreateIndividual(ind); err != nil {
			return err
		}
		for _, acc := range accounts {
			if err := r.CreateAccount(acc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return ind, accounts, nil
}

// Authenticate checks customer credentials. Lookup misses and hash
// mismatches collapse into the same error so usernames cannot be probed.
func (is *IndividualService) Authenticate(username, password string) (*store.Individual, error) {
	ind, err := is.repo.GetIndividualByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if ind.Status != constants.StatusActive {
		return nil, ErrInvalidCredentials
	}
	if ind.PasswordHash != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return ind, nil
}

func (is *IndividualService) Get(id string) (*store.Individual, error) {
	return is.repo.GetIndividualByID(id)
}

// HashPassword matches the credential format of the legacy system:
// hex-encoded sha256 of the raw password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
