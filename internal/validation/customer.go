package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
)

// CustomerStore is the slice of the repository the signup validators need.
// Keeping it narrow avoids a cycle with the service package.
type CustomerStore interface {
	UsernameExists(username string) (bool, error)
}

type CustomerValidator struct {
	store CustomerStore
}

func NewCustomerValidator(store CustomerStore) *CustomerValidator {
	return &CustomerValidator{store: store}
}

// ValidateUsername checks name format only, without touching the store.
func ValidateUsername(val string) error {
	name := strings.TrimSpace(val)

	if name == "" {
		return fmt.Errorf("username can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("username too long (max %d characters)", constants.MaxNameLen)
	}

	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return fmt.Errorf("username may only contain letters, digits, '.', '_' and '-'")
		}
	}

	return nil
}

// ValidateNewUsername additionally checks the name is free.
func (v *CustomerValidator) ValidateNewUsername(val string) error {
	if err := ValidateUsername(val); err != nil {
		return err
	}

	exists, err := v.store.UsernameExists(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return fmt.Errorf("username '%s' is already taken: %w", strings.TrimSpace(val), store.ErrUsernameTaken)
	}

	return nil
}

func ValidatePassword(val string) error {
	if len(val) < constants.MinPwLen {
		return fmt.Errorf("password must be at least %d characters", constants.MinPwLen)
	}
	return nil
}

func ValidateName(val string) error {
	name := strings.TrimSpace(val)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAge parses and checks the signup age. Bank policy: adults only.
func ValidateAge(val string) error {
	age, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("age must be a whole number")
	}
	if age < constants.MinSignupAge {
		return fmt.Errorf("must be %d or older to open an account", constants.MinSignupAge)
	}
	if age > 150 {
		return fmt.Errorf("age out of range")
	}
	return nil
}
