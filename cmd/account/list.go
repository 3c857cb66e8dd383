package account

import (
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/ui/views"
)

func newListCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all your accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireCustomer(application)
			if err != nil {
				return err
			}

			accounts, err := application.Service.Account.ListByIndividual(sess.ID)
			if err != nil {
				return err
			}

			return views.RenderAccountList(accounts, application.Service.Config.Defaults.Currency)
		},
	}
}
