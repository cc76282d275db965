package display

import (
	"testing"

	"vending-machine/internal/coin"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		minorUnits int
		expected   string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{65, "$0.65"},
		{100, "$1.00"},
		{165, "$1.65"},
		{-15, "-$0.15"},
	}
	for _, tt := range tests {
		if got := Amount(tt.minorUnits); got != tt.expected {
			t.Errorf("Amount(%d) = %q, expected %q", tt.minorUnits, got, tt.expected)
		}
	}
}

func TestCoins(t *testing.T) {
	if got := Coins(coin.Nickel, 1); got != "1 nickel" {
		t.Errorf("expected singular, got %q", got)
	}
	if got := Coins(coin.Nickel, 3); got != "3 nickels" {
		t.Errorf("expected plural, got %q", got)
	}
	if got := Coins(coin.Dime, 0); got != "0 dimes" {
		t.Errorf("expected plural zero, got %q", got)
	}
}

func TestCoinList(t *testing.T) {
	got := CoinList([]coin.Denomination{coin.Quarter, coin.Quarter, coin.Dime})
	if got != "quarter, quarter, dime" {
		t.Errorf("unexpected list: %q", got)
	}
	if got := CoinList(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
