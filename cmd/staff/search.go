package staff

import (
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/ui/views"
)

func newSearchCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <username>",
		Short: "Look up a customer's profile and accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireStaff(application); err != nil {
				return err
			}

			ind, accounts, err := application.Service.Employee.SearchCustomer(args[0])
			if err != nil {
				return err
			}

			views.RenderCustomer(ind)
			return views.RenderAccountList(accounts, application.Service.Config.Defaults.Currency)
		},
	}
}
