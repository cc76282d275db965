package machine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSelector   = errors.New("no item for selector")
	ErrSoldOut           = errors.New("item sold out")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrChangeUnavailable = errors.New("cannot make change")
)

// InsufficientFundsError carries the shortfall so the caller can tell the
// user exactly how much more to insert. It matches ErrInsufficientFunds
// under errors.Is.
type InsufficientFundsError struct {
	Price    int
	Inserted int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %d more required", e.Shortfall())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Shortfall is price minus inserted, in minor units.
func (e *InsufficientFundsError) Shortfall() int {
	return e.Price - e.Inserted
}
