package coin

// Denomination is a coin face value in minor currency units (cents).
// Using integer cents keeps every monetary comparison exact; there is no
// epsilon anywhere in the solver.
type Denomination int

const (
	Nickel  Denomination = 5
	Dime    Denomination = 10
	Quarter Denomination = 25
	Dollar  Denomination = 100
)

// Denominations lists every face value the machine accepts, ascending.
var Denominations = []Denomination{Nickel, Dime, Quarter, Dollar}

// InputCode is the single-character token the dispatcher maps to a coin
// insert ("n", "d", "q", "1").
func (d Denomination) InputCode() string {
	switch d {
	case Nickel:
		return "n"
	case Dime:
		return "d"
	case Quarter:
		return "q"
	case Dollar:
		return "1"
	}
	return "?"
}

func (d Denomination) String() string {
	switch d {
	case Nickel:
		return "nickel"
	case Dime:
		return "dime"
	case Quarter:
		return "quarter"
	case Dollar:
		return "dollar"
	}
	return "unknown"
}

// Value returns the face value in minor units.
func (d Denomination) Value() int { return int(d) }

// Recognized reports whether d is one of the machine's accepted face values.
func Recognized(d Denomination) bool {
	for _, known := range Denominations {
		if d == known {
			return true
		}
	}
	return false
}

// FromCode resolves an input code back to its denomination.
func FromCode(code string) (Denomination, bool) {
	for _, d := range Denominations {
		if d.InputCode() == code {
			return d, true
		}
	}
	return 0, false
}
