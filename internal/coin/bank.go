package coin

import "fmt"

// Bank is the machine's own stock of denominations, a multiset keyed by face
// value. Counts never go negative; Remove refuses rather than underflow.
type Bank map[Denomination]int

func NewBank() Bank {
	return make(Bank, len(Denominations))
}

// Add puts one coin of the given denomination into the bank.
func (b Bank) Add(d Denomination) {
	b[d]++
}

// SetCount sets the stored count for a denomination. Absolute set, not
// additive: restocking with the same quantity twice is idempotent, which
// keeps administrative refills deterministic.
func (b Bank) SetCount(d Denomination, quantity int) {
	b[d] = quantity
}

// Count returns how many coins of d the bank holds.
func (b Bank) Count(d Denomination) int {
	return b[d]
}

// Remove takes one coin of d out of the bank. Removing a denomination the
// bank does not hold is an invariant violation, never a user-facing case.
func (b Bank) Remove(d Denomination) error {
	if b[d] <= 0 {
		return fmt.Errorf("no %s to remove from bank", d)
	}
	b[d]--
	return nil
}

// TotalValue is the summed face value of every coin in the bank, in minor
// units.
func (b Bank) TotalValue() int {
	total := 0
	for d, n := range b {
		total += d.Value() * n
	}
	return total
}

// Clone returns an independent copy. The change solver branches on clones so
// failed search branches never touch the real bank.
func (b Bank) Clone() Bank {
	c := make(Bank, len(b))
	for d, n := range b {
		c[d] = n
	}
	return c
}

// Contents lists the bank ascending by face value for deterministic display.
func (b Bank) Contents() []Holding {
	var out []Holding
	for _, d := range Denominations {
		out = append(out, Holding{Denomination: d, Count: b[d]})
	}
	return out
}

// Holding is one denomination's stored count.
type Holding struct {
	Denomination Denomination
	Count        int
}
