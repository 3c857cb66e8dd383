package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/ui/prompts"
	"github.com/tellerbank/teller/internal/ui/views"
)

func NewHistoryCmd(application *app.App) *cobra.Command {
	var (
		accountFlag string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the transaction history of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireCustomer(application)
			if err != nil {
				return err
			}

			// Closed accounts keep their ledger, so history selects from
			// all of the customer's accounts, not just active ones.
			accounts, err := application.Service.Account.ListByIndividual(sess.ID)
			if err != nil {
				return err
			}
			currency := application.Service.Config.Defaults.Currency

			accountID, err := pickAccount(accounts, accountFlag, currency)
			if err != nil {
				return err
			}

			transactions, err := application.Service.Engine.History(accountID, limit)
			if err != nil {
				return err
			}

			acc, err := application.Service.Account.Get(accountID)
			if err != nil {
				return err
			}

			return views.RenderHistory(prompts.AccountLabel(acc, currency), transactions, currency)
		},
	}

	cmd.Flags().StringVarP(&accountFlag, "account", "a", "", "Account type (checking, savings, creditcard) or account ID")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of transactions to show (0 = all)")

	return cmd
}
