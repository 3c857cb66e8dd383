package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
	"github.com/tellerbank/teller/internal/utils"
)

// AccountLabel is the display form of an account used across prompts and
// views: "checking  123.45 USD".
func AccountLabel(acc *store.Account, currency string) string {
	label := fmt.Sprintf("%-10s %s %s", acc.Type, utils.FormatFromCents(acc.Balance), currency)
	if acc.Status == constants.StatusClosed {
		label += " (closed)"
	}
	return label
}

// SelectAccount picks one of the given accounts and returns its ID.
func SelectAccount(message string, accounts []*store.Account, currency string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available")
	}

	var opts []huh.Option[string]
	for _, acc := range accounts {
		opts = append(opts, huh.NewOption(AccountLabel(acc, currency), acc.ID))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(8).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return selected, nil
}

// PromptAccountType selects one of the product account types.
func PromptAccountType() (string, error) {
	options := []string{
		"checking - Checking",
		"savings - Savings",
		"creditcard - Credit Card",
	}

	selected, err := PromptSelect("Account Type:", options, options[0])
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return strings.Split(selected, " ")[0], nil
}
