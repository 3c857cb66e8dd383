package prompts

import (
	"strconv"
	"strings"

	"github.com/tellerbank/teller/internal/validation"
)

// Credentials collects a username/password pair for login.
func Credentials(presetUsername string) (string, string, error) {
	username := presetUsername
	if username == "" {
		var err error
		username, err = PromptInput("Username:", "", validation.ValidateUsername)
		if err != nil {
			return "", "", err
		}
	}

	password, err := PromptPassword("Password:", nil)
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(username), password, nil
}

// SignupAnswers is the raw wizard output for a new customer.
type SignupAnswers struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Age       int
	Address   string
}

// Signup runs the new-customer wizard. The username validator is injected
// so the wizard can refuse taken names as they are typed.
func Signup(usernameValidator func(string) error) (*SignupAnswers, error) {
	username, err := PromptInput("Create Username:", "", usernameValidator)
	if err != nil {
		return nil, err
	}

	password, err := PromptPassword("Create Password:", validation.ValidatePassword)
	if err != nil {
		return nil, err
	}

	firstName, err := PromptInput("First name:", "", validation.ValidateName)
	if err != nil {
		return nil, err
	}

	lastName, err := PromptInput("Last name:", "", validation.ValidateName)
	if err != nil {
		return nil, err
	}

	ageStr, err := PromptInput("Age:", "", validation.ValidateAge)
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(strings.TrimSpace(ageStr))
	if err != nil {
		return nil, err
	}

	address, err := PromptRequired("Address:")
	if err != nil {
		return nil, err
	}

	return &SignupAnswers{
		Username:  strings.TrimSpace(username),
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Address:   address,
	}, nil
}
