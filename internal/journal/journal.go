// Package journal records machine events in an append-only audit trail.
// Machine state is never reconstructed from it; it exists so an operator can
// reconcile the cash box against what the machine believes happened.
package journal

import "time"

// Event kinds. Item and bank restocks are distinct so the trail can be
// reconciled: a KindRestock event names a Selector, a KindBankRestock event
// carries the stocked value in Amount.
const (
	KindCoinInserted  = "coin_inserted"
	KindPurchase      = "purchase"
	KindCoinsReturned = "coins_returned"
	KindRestock       = "restock"
	KindBankRestock   = "bank_restock"
	KindReset         = "reset"
)

type Event struct {
	ID         string
	Kind       string
	Selector   string
	Amount     int // minor units taken in (insert) or retained as revenue (purchase)
	Ejected    int // minor units ejected back to the user
	OccurredAt time.Time
}

type Journal interface {
	Record(event Event) error
}

// Nop discards every event. Used when no database is configured and in
// tests that do not care about the audit trail.
type Nop struct{}

func (Nop) Record(Event) error { return nil }
