package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/session"
	"github.com/tellerbank/teller/internal/ui/prompts"
	"github.com/tellerbank/teller/internal/utils"
	"github.com/tellerbank/teller/internal/validation"
)

func newOpenCmd(application *app.App) *cobra.Command {
	var (
		accType  string
		deposit  string
		customer string
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open an additional account",
		Long: `Open an additional account.

Customers open accounts for themselves. Staff can open an account on a
customer's behalf with --customer.

Examples:
  teller account open --type savings --deposit 100
  teller account open --type checking --customer jdoe   (staff only)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireSession(application)
			if err != nil {
				return err
			}

			individualID, err := resolveOwner(application, sess, customer)
			if err != nil {
				return err
			}

			if accType == "" {
				accType, err = prompts.PromptAccountType()
				if err != nil {
					return err
				}
			}

			if deposit == "" {
				deposit, err = prompts.PromptAmount(
					"Initial deposit (press Enter for 0):",
					"A positive initial deposit is recorded as the account's first transaction",
					validation.ValidateInitialDeposit,
				)
				if err != nil {
					return err
				}
				if deposit == "" {
					deposit = "0"
				}
			} else if err := validation.ValidateInitialDeposit(deposit); err != nil {
				return err
			}

			cents, err := utils.ParseToCents(deposit)
			if err != nil {
				return err
			}

			acc, err := application.Service.Account.Open(individualID, accType, cents)
			if err != nil {
				return err
			}

			currency := application.Service.Config.Defaults.Currency
			pterm.Success.Printf("Opened %s account %s with balance %s %s\n",
				acc.Type, acc.ID, utils.FormatFromCents(acc.Balance), currency)
			return nil
		},
	}

	cmd.Flags().StringVarP(&accType, "type", "t", "", "Account type: checking, savings or creditcard")
	cmd.Flags().StringVarP(&deposit, "deposit", "d", "", "Initial deposit (e.g. 100 or 100.50)")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer username (staff only)")

	return cmd
}

// resolveOwner decides whose account is being opened. Self-service for
// customers; staff must name the customer.
func resolveOwner(application *app.App, sess *session.Session, customer string) (string, error) {
	if sess.Kind == session.KindCustomer {
		if customer != "" {
			return "", fmt.Errorf("--customer is for staff; you can only open accounts for yourself")
		}
		return sess.ID, nil
	}

	if customer == "" {
		return "", fmt.Errorf("staff must pass --customer <username>")
	}

	ind, _, err := application.Service.Employee.SearchCustomer(customer)
	if err != nil {
		return "", err
	}
	return ind.ID, nil
}
