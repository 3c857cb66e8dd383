package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/ui/views"
)

func NewStatementCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "statement",
		Short: "Show the balance statement for your accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireCustomer(application)
			if err != nil {
				return err
			}

			ind, err := application.Service.Individual.Get(sess.ID)
			if err != nil {
				return err
			}

			accounts, err := application.Service.Account.ListByIndividual(ind.ID)
			if err != nil {
				return err
			}

			return views.RenderStatement(ind, accounts, application.Service.Config.Defaults.Currency)
		},
	}
}
