package store

import "github.com/shopspring/decimal"

type Individual struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Age          int
	Address      string
	Status       string
}

type Account struct {
	ID           string
	IndividualID string
	Type         string
	Liability    bool
	InterestRate decimal.Decimal
	Balance      int64
	Status       string
	Version      int64
	CreatedAt    int64
}

type Transaction struct {
	ID               string
	AccountID        string
	Type             string
	Amount           int64
	ResultingBalance int64
	Status           string
	Memo             string
	CreatedAt        int64
}

type Employee struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	Status       string
}
