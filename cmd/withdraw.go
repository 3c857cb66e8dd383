package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/utils"
)

func NewWithdrawCmd(application *app.App) *cobra.Command {
	flags := &transactFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw money from one of your accounts",
		Long: `Withdraw money from one of your accounts.

Withdrawals never overdraw: an amount above the current balance is
refused and the balance stays untouched.

Examples:
  # Interactive mode
  teller withdraw

  # Quick mode
  teller withdraw 30 --account checking`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireCustomer(application)
			if err != nil {
				return err
			}

			accountID, cents, err := resolveTransaction(application, sess.ID, flags, args, "Withdrawal amount:")
			if err != nil {
				return err
			}

			tx, err := application.Service.Engine.Withdraw(accountID, cents, flags.Memo)
			if err != nil {
				return err
			}

			currency := application.Service.Config.Defaults.Currency
			pterm.Success.Printf("Withdrew %s %s. New balance: %s %s\n",
				utils.FormatFromCents(tx.Amount), currency,
				utils.FormatFromCents(tx.ResultingBalance), currency)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account type (checking, savings, creditcard) or account ID")
	cmd.Flags().StringVarP(&flags.Memo, "memo", "m", "", "Optional note stored with the transaction")

	return cmd
}
