package staff

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/session"
	"github.com/tellerbank/teller/internal/ui/prompts"
)

func newLoginCmd(application *app.App) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with employee credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, password, err := prompts.Credentials(username)
			if err != nil {
				return err
			}

			emp, err := application.Service.Employee.Authenticate(user, password)
			if err != nil {
				return err
			}

			sess := session.New(session.KindStaff, emp.ID, emp.Username)
			if err := session.Save(application.DataDir, sess); err != nil {
				return err
			}

			pterm.Success.Printf("Logged in as staff %s (%s)\n", emp.Username, emp.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Employee username (prompted when omitted)")

	return cmd
}
