// Package ui holds the shared pterm styling used by teller's views, so
// statements, histories and account lists render with one consistent look.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	l1Style = pterm.NewStyle(pterm.BgBlue, pterm.FgWhite, pterm.Bold)
	l2Style = pterm.NewStyle(pterm.FgBlue, pterm.Bold)
)

// PrintL1Title renders a screen-level banner, e.g. the statement header.
func PrintL1Title(format string, a ...interface{}) {
	l1Style.Printf(" %s   \n", fmt.Sprintf(format, a...))
}

// PrintL2Title renders a section heading under an L1 banner, e.g. the
// Assets and Liabilities groups of a statement.
func PrintL2Title(format string, a ...interface{}) {
	l2Style.Printf("# %s   \n", fmt.Sprintf(format, a...))
}
