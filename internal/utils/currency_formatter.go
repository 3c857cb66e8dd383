package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tellerbank/teller/internal/constants"
)

func FormatFromCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/float64(constants.CentsPerUnit))
}

// ParseToCents parses "150", "150.5" or "150.50" into minor units. Signs
// are parsed so callers get a useful error from the amount validators, but
// more than two decimals are rejected outright.
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount is required")
	}

	negative := false
	switch amountStr[0] {
	case '-':
		negative = true
		amountStr = amountStr[1:]
	case '+':
		amountStr = amountStr[1:]
	}

	parts := strings.Split(amountStr, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	var units int64
	var err error
	if parts[0] != "" {
		units, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
	}

	var cents int64
	if len(parts) == 2 {
		centStr := parts[1]
		switch len(centStr) {
		case 1:
			centStr += "0" // "150.5" -> 50 cents
		case 2:
		default:
			return 0, fmt.Errorf("amounts carry at most two decimals: %s", amountStr)
		}

		cents, err = strconv.ParseInt(centStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
	}

	total := units*int64(constants.CentsPerUnit) + cents
	if negative {
		total = -total
	}
	return total, nil
}
