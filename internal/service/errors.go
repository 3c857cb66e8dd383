package service

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountClosed      = errors.New("account is closed")
	ErrAccountNotEmpty    = errors.New("account balance must be zero before closing")
	ErrTransient          = errors.New("operation aborted after repeated write conflicts")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
