package machine

import (
	"fmt"
	"sort"
)

// Item is one sellable slot: a single uppercase selector letter, a
// description, a price in minor units and the remaining quantity. Price is
// fixed after creation; quantity never goes negative.
type Item struct {
	Selector    string
	Description string
	Price       int
	Quantity    int
}

// Inventory maps selectors to items. It is a plain map owned by the Machine;
// all mutation happens under the machine's lock.
type Inventory map[string]Item

func NewInventory() Inventory {
	return make(Inventory)
}

// Lookup returns the item for a selector.
func (inv Inventory) Lookup(selector string) (Item, bool) {
	it, ok := inv[selector]
	return it, ok
}

// Decrement removes one unit of the item's stock.
func (inv Inventory) Decrement(selector string) error {
	it, ok := inv[selector]
	if !ok {
		return fmt.Errorf("decrement %q: %w", selector, ErrUnknownSelector)
	}
	if it.Quantity <= 0 {
		return fmt.Errorf("decrement %q: %w", selector, ErrSoldOut)
	}
	it.Quantity--
	inv[selector] = it
	return nil
}

// Restock upserts an item record. Used both for initial fill and for
// administrative reset-and-refill, so it overwrites any existing record.
func (inv Inventory) Restock(selector, description string, price, quantity int) {
	inv[selector] = Item{
		Selector:    selector,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
}

// Reset clears all items.
func (inv Inventory) Reset() {
	for sel := range inv {
		delete(inv, sel)
	}
}

// Items lists the inventory sorted by selector for deterministic display.
func (inv Inventory) Items() []Item {
	out := make([]Item, 0, len(inv))
	for _, it := range inv {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Selector < out[j].Selector })
	return out
}
