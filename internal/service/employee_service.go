package service

import (
	"errors"
	"strings"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
)

type EmployeeService struct {
	repo store.Repository
}

func NewEmployeeService(repo store.Repository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (es *EmployeeService) Authenticate(username, password string) (*store.Employee, error) {
	emp, err := es.repo.GetEmployeeByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if emp.Status != constants.StatusActive {
		return nil, ErrInvalidCredentials
	}
	if emp.PasswordHash != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return emp, nil
}

// SearchCustomer resolves a customer profile and their accounts by
// username, for the staff dashboard.
func (es *EmployeeService) SearchCustomer(username string) (*store.Individual, []*store.Account, error) {
	ind, err := es.repo.GetIndividualByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, nil, err
	}

	accounts, err := es.repo.GetAccountsByIndividual(ind.ID)
	if err != nil {
		return nil, nil, err
	}

	return ind, accounts, nil
}
