// Package dispatch turns single command tokens into output lines. It is the
// text edge of the machine: all money arithmetic stays in the core, all
// formatting lives in display.
package dispatch

import (
	"errors"
	"fmt"

	"vending-machine/internal/coin"
	"vending-machine/internal/display"
	"vending-machine/internal/machine"
	"vending-machine/internal/observability/metrics"
)

var helpLines = []string{
	"n, d, q, 1      insert a nickel, dime, quarter or dollar",
	"A-Z             buy the item with that selector",
	"return          return inserted coins",
	"inserted        show the amount inserted",
	"items           list items for sale",
	"change          list coins held by the machine",
	"help            show this message",
	"exit, quit      leave",
}

type Dispatcher struct {
	machine *machine.Machine
}

func New(m *machine.Machine) *Dispatcher {
	return &Dispatcher{machine: m}
}

// Process executes one command token and returns the lines to show the
// user. Every failure is reported as text; the machine stays usable.
func (d *Dispatcher) Process(token string) []string {
	if den, ok := coin.FromCode(token); ok {
		metrics.CommandsTotal.WithLabelValues("insert").Inc()
		total, err := d.machine.InsertCoin(den)
		if err != nil {
			return []string{err.Error()}
		}
		return []string{fmt.Sprintf("inserted %s, total %s",
			den, display.Amount(total))}
	}

	switch token {
	case "return":
		metrics.CommandsTotal.WithLabelValues("return").Inc()
		return d.returnCoins()
	case "change":
		metrics.CommandsTotal.WithLabelValues("change").Inc()
		return d.listBank()
	case "items":
		metrics.CommandsTotal.WithLabelValues("items").Inc()
		return d.listItems()
	case "inserted":
		metrics.CommandsTotal.WithLabelValues("inserted").Inc()
		return []string{display.Amount(d.machine.TotalInserted())}
	case "help":
		metrics.CommandsTotal.WithLabelValues("help").Inc()
		return helpLines
	}

	if isSelector(token) {
		metrics.CommandsTotal.WithLabelValues("select").Inc()
		return d.selectItem(token)
	}

	metrics.CommandsTotal.WithLabelValues("invalid").Inc()
	return []string{fmt.Sprintf("invalid command or selector %q", token)}
}

func (d *Dispatcher) selectItem(selector string) []string {
	purchase, err := d.machine.SelectItem(selector)
	if err != nil {
		return d.rejectLines(selector, err)
	}
	metrics.VendsTotal.Inc()
	metrics.CoinsDispensed.Add(float64(len(purchase.Change)))
	lines := []string{selector}
	if len(purchase.Change) > 0 {
		lines = append(lines, fmt.Sprintf("change: %s", display.CoinList(purchase.Change)))
	}
	return lines
}

func (d *Dispatcher) rejectLines(selector string, err error) []string {
	var funds *machine.InsufficientFundsError
	switch {
	case errors.As(err, &funds):
		metrics.RejectionsTotal.WithLabelValues("insufficient_funds").Inc()
		return []string{fmt.Sprintf("insert %s more", display.Amount(funds.Shortfall()))}
	case errors.Is(err, machine.ErrUnknownSelector):
		metrics.RejectionsTotal.WithLabelValues("unknown_selector").Inc()
		return []string{fmt.Sprintf("invalid command or selector %q", selector)}
	case errors.Is(err, machine.ErrSoldOut):
		metrics.RejectionsTotal.WithLabelValues("sold_out").Inc()
		return []string{fmt.Sprintf("%s is sold out", selector)}
	case errors.Is(err, machine.ErrChangeUnavailable):
		metrics.RejectionsTotal.WithLabelValues("change_unavailable").Inc()
		return []string{"cannot make change, use exact amount or return coins"}
	}
	return []string{err.Error()}
}

func (d *Dispatcher) returnCoins() []string {
	refund, err := d.machine.ReturnCoins()
	if err != nil {
		if errors.Is(err, machine.ErrChangeUnavailable) {
			return []string{"cannot return coins, bank cannot represent the inserted amount"}
		}
		return []string{err.Error()}
	}
	if len(refund) == 0 {
		return []string{"no coins to return"}
	}
	metrics.CoinsDispensed.Add(float64(len(refund)))
	return []string{fmt.Sprintf("returned: %s", display.CoinList(refund))}
}

func (d *Dispatcher) listBank() []string {
	var lines []string
	for _, h := range d.machine.BankContents() {
		lines = append(lines, display.Coins(h.Denomination, h.Count))
	}
	lines = append(lines, fmt.Sprintf("total %s", display.Amount(d.machine.BankValue())))
	return lines
}

func (d *Dispatcher) listItems() []string {
	items := d.machine.Items()
	if len(items) == 0 {
		return []string{"no items for sale"}
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s: %s %s (%d left)",
			it.Selector, it.Description, display.Amount(it.Price), it.Quantity))
	}
	return lines
}

func isSelector(token string) bool {
	return len(token) == 1 && token[0] >= 'A' && token[0] <= 'Z'
}
