package validation

import (
	"fmt"

	"github.com/tellerbank/teller/internal/utils"
)

// ValidateAmount accepts strictly positive amounts with at most two
// decimals. Zero is not a transaction.
func ValidateAmount(val string) error {
	cents, err := utils.ParseToCents(val)
	if err != nil {
		return err
	}
	if cents <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateInitialDeposit is ValidateAmount, except zero is allowed: an
// account may open empty.
func ValidateInitialDeposit(val string) error {
	if val == "" || val == "0" {
		return nil
	}

	cents, err := utils.ParseToCents(val)
	if err != nil {
		return err
	}
	if cents < 0 {
		return fmt.Errorf("initial deposit can't be negative")
	}
	return nil
}
