package cmd

import (
	"fmt"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/store"
	"github.com/tellerbank/teller/internal/ui/prompts"
	"github.com/tellerbank/teller/internal/utils"
	"github.com/tellerbank/teller/internal/validation"
)

// transactFlags are shared by deposit and withdraw.
type transactFlags struct {
	Account string
	Memo    string
}

// resolveTransaction turns command input into (accountID, cents). The
// account flag takes a type name ("checking") or a full account ID; when
// it is empty the user picks from their active accounts. The amount comes
// from the positional argument or a prompt.
func resolveTransaction(application *app.App, customerID string, flags *transactFlags, args []string, promptTitle string) (string, int64, error) {
	accounts, err := application.Service.Account.ActiveByIndividual(customerID)
	if err != nil {
		return "", 0, err
	}
	currency := application.Service.Config.Defaults.Currency

	accountID, err := pickAccount(accounts, flags.Account, currency)
	if err != nil {
		return "", 0, err
	}

	var amountStr string
	if len(args) > 0 {
		amountStr = args[0]
		if err := validation.ValidateAmount(amountStr); err != nil {
			return "", 0, err
		}
	} else {
		amountStr, err = prompts.PromptAmount(
			promptTitle,
			"Enter the amount, no currency symbol (e.g. 150 or 150.50)",
			validation.ValidateAmount,
		)
		if err != nil {
			return "", 0, err
		}
	}

	cents, err := utils.ParseToCents(amountStr)
	if err != nil {
		return "", 0, err
	}

	return accountID, cents, nil
}

func pickAccount(accounts []*store.Account, selector, currency string) (string, error) {
	if selector == "" {
		return prompts.SelectAccount("Account:", accounts, currency)
	}

	for _, acc := range accounts {
		if acc.Type == selector || acc.ID == selector {
			return acc.ID, nil
		}
	}
	return "", fmt.Errorf("no active '%s' account found", selector)
}
