package coin

// MakeChange decomposes amount into coins available in bank, largest face
// value first. It returns the denominations to eject, in the order they were
// chosen, and whether an exact decomposition exists. A zero amount succeeds
// with an empty list (exact payment).
//
// The search is first-fit with backtracking: each branch hypothetically
// spends one coin on a clone of the bank and recurses on the remainder; a
// failed branch falls through to the next smaller denomination. Because only
// clones are mutated, the caller's bank is never touched, so the caller
// alone decides whether to commit the returned coins. The ordering is part
// of the contract: identical inputs always produce the identical sequence.
//
// Recursion depth is bounded by amount divided by the smallest face value,
// which is shallow for realistic currency amounts.
func MakeChange(amount int, bank Bank) ([]Denomination, bool) {
	if amount < 0 {
		return nil, false
	}
	if amount == 0 {
		return []Denomination{}, true
	}
	for i := len(Denominations) - 1; i >= 0; i-- {
		d := Denominations[i]
		if d.Value() > amount || bank.Count(d) == 0 {
			continue
		}
		trial := bank.Clone()
		trial[d]--
		rest, ok := MakeChange(amount-d.Value(), trial)
		if ok {
			return append([]Denomination{d}, rest...), true
		}
	}
	return nil, false
}

// Sum is the total face value of a coin sequence, in minor units.
func Sum(coins []Denomination) int {
	total := 0
	for _, d := range coins {
		total += d.Value()
	}
	return total
}
