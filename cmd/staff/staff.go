package staff

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/session"
)

func NewStaffCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Staff operations (employee login required)",
	}

	cmd.AddCommand(newLoginCmd(application))
	cmd.AddCommand(newSearchCmd(application))

	return cmd
}

func requireStaff(application *app.App) (*session.Session, error) {
	sess, err := session.Load(application.DataDir)
	if err != nil {
		return nil, fmt.Errorf("please run 'teller staff login' first: %w", err)
	}
	if sess.Kind != session.KindStaff {
		return nil, fmt.Errorf("a staff session is required (currently logged in as customer '%s')", sess.Username)
	}
	return sess, nil
}
