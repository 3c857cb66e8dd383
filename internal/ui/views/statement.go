package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/tellerbank/teller/internal/store"
	"github.com/tellerbank/teller/internal/ui"
	"github.com/tellerbank/teller/internal/utils"
)

// RenderStatement prints the balance statement grouped the way tellers
// read it: asset accounts first, then liabilities.
func RenderStatement(ind *store.Individual, accounts []*store.Account, currency string) error {
	ui.PrintL1Title("Statement for %s %s (%s)", ind.FirstName, ind.LastName, ind.Username)

	var assets, liabilities []*store.Account
	for _, acc := range accounts {
		if acc.Liability {
			liabilities = append(liabilities, acc)
		} else {
			assets = append(assets, acc)
		}
	}

	if err := renderAccountGroup("Assets", assets, currency); err != nil {
		return err
	}
	return renderAccountGroup("Liabilities", liabilities, currency)
}

func renderAccountGroup(title string, accounts []*store.Account, currency string) error {
	ui.PrintL2Title("%s", title)

	if len(accounts) == 0 {
		pterm.Info.Println("(none)")
		return nil
	}

	tableData := pterm.TableData{{"Account", "Status", "Balance"}}
	for _, acc := range accounts {
		balance := fmt.Sprintf("%s %s", utils.FormatFromCents(acc.Balance), currency)

		coloredBalance := pterm.Green(balance)
		if acc.Liability {
			coloredBalance = pterm.Red(balance)
		}

		tableData = append(tableData, []string{acc.Type, acc.Status, coloredBalance})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
