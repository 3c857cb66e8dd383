package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/session"
	"github.com/tellerbank/teller/internal/ui/prompts"
)

func NewLoginCmd(application *app.App) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a customer",
		Long: `Log in with your customer credentials.

The login is remembered until you run 'teller logout', so follow-up
commands (statement, deposit, withdraw, history) don't prompt again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, password, err := prompts.Credentials(username)
			if err != nil {
				return err
			}

			ind, err := application.Service.Individual.Authenticate(user, password)
			if err != nil {
				return err
			}

			sess := session.New(session.KindCustomer, ind.ID, ind.Username)
			if err := session.Save(application.DataDir, sess); err != nil {
				return err
			}

			pterm.Success.Printf("Logged in as %s\n", ind.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted when omitted)")

	return cmd
}

func NewLogoutCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Clear(application.DataDir); err != nil {
				return err
			}
			pterm.Success.Println("Logged out")
			return nil
		},
	}
}
