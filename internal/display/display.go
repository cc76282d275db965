// Package display renders the core's integer amounts and denomination lists
// as human-readable text. The core itself only ever exposes raw integers;
// everything here is presentation.
package display

import (
	"fmt"
	"strings"

	"vending-machine/internal/coin"
)

// Amount formats minor units as a dollar string, e.g. 165 -> "$1.65".
func Amount(minorUnits int) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s$%d.%02d", sign, minorUnits/100, minorUnits%100)
}

// Coins formats a holding like "3 nickels" or "1 dime".
func Coins(d coin.Denomination, count int) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", d)
	}
	return fmt.Sprintf("%d %ss", count, d)
}

// CoinList renders an ejected coin sequence, e.g. "quarter, quarter, dime".
func CoinList(coins []coin.Denomination) string {
	names := make([]string, len(coins))
	for i, d := range coins {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}
