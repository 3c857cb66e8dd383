package views

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
	"github.com/tellerbank/teller/internal/utils"
)

// RenderHistory prints an account ledger, oldest first, with the running
// balance column so chaining is visible at a glance.
func RenderHistory(accountLabel string, transactions []*store.Transaction, currency string) error {
	pterm.DefaultSection.Printf("Transaction History: %s", accountLabel)

	if len(transactions) == 0 {
		pterm.Info.Println("No transactions yet.")
		return nil
	}

	tableData := pterm.TableData{{"Date", "Type", "Amount", "Balance", "Status", "Memo"}}
	for _, tx := range transactions {
		date := time.Unix(tx.CreatedAt, 0).Format(constants.DateFormat)
		amount := fmt.Sprintf("%s %s", utils.FormatFromCents(tx.Amount), currency)
		balance := fmt.Sprintf("%s %s", utils.FormatFromCents(tx.ResultingBalance), currency)

		var coloredAmount string
		switch {
		case tx.Status == constants.TxRejected:
			coloredAmount = pterm.Gray(amount)
		case tx.Type == constants.TxDeposit:
			coloredAmount = pterm.Green("+" + amount)
		default:
			coloredAmount = pterm.Red("-" + amount)
		}

		tableData = append(tableData, []string{date, tx.Type, coloredAmount, balance, tx.Status, tx.Memo})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
