package service

import (
	"github.com/tellerbank/teller/internal/config"
	"github.com/tellerbank/teller/internal/store"
)

type Service struct {
	Individual *IndividualService
	Employee   *EmployeeService
	Account    *AccountService
	Engine     *Engine
	Config     *config.Config
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Individual: NewIndividualService(repo),
		Employee:   NewEmployeeService(repo),
		Account:    NewAccountService(repo),
		Engine:     NewEngine(repo, cfg),
		Config:     cfg,
	}
}
