package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/store"
	"github.com/tellerbank/teller/internal/ui/prompts"
)

func newCloseCmd(application *app.App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close one of your accounts",
		Long: `Close one of your accounts.

Only empty accounts can close; withdraw the remaining balance first. A
closed account keeps its transaction history but takes no new
transactions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireCustomer(application)
			if err != nil {
				return err
			}

			// The flag resolves against the customer's own accounts only,
			// so an account ID belonging to someone else never reaches
			// the close operation.
			accounts, err := application.Service.Account.ActiveByIndividual(sess.ID)
			if err != nil {
				return err
			}

			currency := application.Service.Config.Defaults.Currency
			accountID, err := resolveOwnAccount(accounts, accountFlag, currency)
			if err != nil {
				return err
			}

			confirmed, err := prompts.PromptConfirm("Close this account? This cannot be undone.", false)
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Close cancelled")
				return nil
			}

			if err := application.Service.Account.Close(accountID); err != nil {
				return err
			}

			pterm.Success.Printf("Account %s closed\n", accountID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountFlag, "account", "a", "", "Account type (checking, savings, creditcard) or account ID (prompted when omitted)")

	return cmd
}

// resolveOwnAccount maps the account flag onto one of the given accounts,
// by type name or ID, or prompts for a pick when the flag is empty. The
// caller passes the logged-in customer's accounts, so foreign IDs fall
// through to the not-found error.
func resolveOwnAccount(accounts []*store.Account, selector, currency string) (string, error) {
	if selector == "" {
		return prompts.SelectAccount("Account to close:", accounts, currency)
	}

	for _, acc := range accounts {
		if acc.Type == selector || acc.ID == selector {
			return acc.ID, nil
		}
	}
	return "", fmt.Errorf("no active '%s' account found", selector)
}
