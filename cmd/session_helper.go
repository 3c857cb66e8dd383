package cmd

import (
	"fmt"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/session"
)

// requireCustomer loads the saved login and refuses staff sessions;
// customer commands act on the logged-in customer's own accounts only.
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
