package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
	"github.com/tellerbank/teller/internal/utils"
)

// RenderAccountList prints every account of one customer with its product
// rate. Closed accounts stay visible; their history is retained.
func RenderAccountList(accounts []*store.Account, currency string) error {
	tableData := pterm.TableData{{"ID", "Type", "Status", "Rate", "Balance"}}

	for _, acc := range accounts {
		balance := fmt.Sprintf("%s %s", utils.FormatFromCents(acc.Balance), currency)
		rate := acc.InterestRate.String()

		var coloredBalance string
		switch {
		case acc.Status == constants.StatusClosed:
			coloredBalance = pterm.Gray(balance)
		case acc.Liability:
			coloredBalance = pterm.Red(balance)
		default:
			coloredBalance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{acc.ID, acc.Type, acc.Status, rate, coloredBalance})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

// RenderCustomer prints the profile block the staff search shows.
func RenderCustomer(ind *store.Individual) {
	pterm.DefaultSection.Printf("Customer %s", ind.Username)
	pterm.Printf("Name:    %s %s\n", ind.FirstName, ind.LastName)
	pterm.Printf("Age:     %d\n", ind.Age)
	pterm.Printf("Address: %s\n", ind.Address)
	pterm.Printf("Status:  %s\n", ind.Status)
}
