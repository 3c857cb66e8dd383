package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/session"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Open, close and list accounts",
	}

	cmd.AddCommand(newOpenCmd(application))
	cmd.AddCommand(newCloseCmd(application))
	cmd.AddCommand(newListCmd(application))

	return cmd
}

func requireCustomer(application *app.App) (*session.Session, error) {
	sess, err := session.Load(application.DataDir)
	if err != nil {
		return nil, fmt.Errorf("please run 'teller login' first: %w", err)
	}
	if sess.Kind != session.KindCustomer {
		return nil, fmt.Errorf("a customer session is required (currently logged in as staff '%s')", sess.Username)
	}
	return sess, nil
}

func requireSession(application *app.App) (*session.Session, error) {
	sess, err := session.Load(application.DataDir)
	if err != nil {
		return nil, fmt.Errorf("please run 'teller login' or 'teller staff login' first: %w", err)
	}
	return sess, nil
}
