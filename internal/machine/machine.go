package machine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vending-machine/internal/coin"
	"vending-machine/internal/journal"
	"vending-machine/pkg"
)

// Machine owns the whole vending state: the coin bank, the inventory and the
// amount inserted by the current user. Every command takes the single mutex
// for its full duration, so a purchase and its change ejection commit as one
// unit or not at all.
type Machine struct {
	mu       sync.Mutex
	bank     coin.Bank
	inv      Inventory
	inserted int
	log      pkg.Logger
	journal  journal.Journal
}

// Purchase is a successful vend: the dispensed item and the change coins in
// ejection order.
type Purchase struct {
	Item   Item
	Change []coin.Denomination
}

func New(log pkg.Logger, jr journal.Journal) *Machine {
	return &Machine{
		bank:    coin.NewBank(),
		inv:     NewInventory(),
		log:     log,
		journal: jr,
	}
}

// InsertCoin accepts one coin into the bank and credits the inserted amount.
// It returns the total now held, read inside the same lock scope as the
// credit so concurrent callers each see their own running total.
func (m *Machine) InsertCoin(d coin.Denomination) (int, error) {
	if !coin.Recognized(d) {
		return 0, fmt.Errorf("unrecognized denomination %d", d.Value())
	}
	m.mu.Lock()
	m.bank.Add(d)
	m.inserted += d.Value()
	total := m.inserted
	m.mu.Unlock()

	m.record(journal.Event{Kind: journal.KindCoinInserted, Amount: d.Value()})
	return total, nil
}

// TotalInserted returns the amount currently held for the active
// transaction, in minor units.
func (m *Machine) TotalInserted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserted
}

// SelectItem attempts a purchase. Validation and change solving happen
// before any mutation; if change cannot be made the bank, the inventory and
// the inserted amount are all left exactly as they were.
func (m *Machine) SelectItem(selector string) (Purchase, error) {
	purchase, changeDue, err := m.selectItem(selector)
	if err != nil {
		return Purchase{}, err
	}

	m.record(journal.Event{
		Kind:     journal.KindPurchase,
		Selector: selector,
		Amount:   purchase.Item.Price,
		Ejected:  changeDue,
	})
	m.log.Info("item dispensed",
		zap.String("selector", selector),
		zap.Int("price", purchase.Item.Price),
		zap.Int("change", changeDue))
	return purchase, nil
}

// selectItem holds the lock for the validate/solve/commit sequence. Journal
// and info logging happen in the caller, outside the lock, so a slow journal
// write never stalls other commands.
func (m *Machine) selectItem(selector string) (Purchase, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.inv.Lookup(selector)
	if !ok {
		return Purchase{}, 0, fmt.Errorf("select %q: %w", selector, ErrUnknownSelector)
	}
	if it.Quantity <= 0 {
		return Purchase{}, 0, fmt.Errorf("select %q: %w", selector, ErrSoldOut)
	}
	if m.inserted < it.Price {
		return Purchase{}, 0, &InsufficientFundsError{Price: it.Price, Inserted: m.inserted}
	}

	changeDue := m.inserted - it.Price
	change, ok := coin.MakeChange(changeDue, m.bank)
	if !ok {
		m.log.Warn("cannot make change, rejecting purchase",
			zap.String("selector", selector),
			zap.Int("changeDue", changeDue))
		return Purchase{}, 0, fmt.Errorf("select %q: %w", selector, ErrChangeUnavailable)
	}

	// Commit. The solver verified every coin against the live bank under
	// this same lock, so removal cannot fail; if it does the bank and the
	// solver disagree and continuing would corrupt the cash box.
	if err := m.inv.Decrement(selector); err != nil {
		panic(fmt.Sprintf("vending: commit decrement failed after validation: %v", err))
	}
	m.eject(change)
	m.inserted = 0

	it.Quantity--
	return Purchase{Item: it, Change: change}, changeDue, nil
}

// ReturnCoins ejects the full inserted amount. The payout is exact or
// nothing: if the bank cannot represent the inserted amount no state
// changes. That should not occur in practice since inserted coins live in
// the bank, but a restock that drained the bank can force it.
func (m *Machine) ReturnCoins() ([]coin.Denomination, error) {
	refund, amount, err := m.returnCoins()
	if err != nil {
		return nil, err
	}
	m.record(journal.Event{Kind: journal.KindCoinsReturned, Ejected: amount})
	return refund, nil
}

func (m *Machine) returnCoins() ([]coin.Denomination, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	refund, ok := coin.MakeChange(m.inserted, m.bank)
	if !ok {
		m.log.Error("bank cannot represent inserted amount",
			zap.Int("inserted", m.inserted))
		return nil, 0, fmt.Errorf("return %d: %w", m.inserted, ErrChangeUnavailable)
	}
	m.eject(refund)
	amount := m.inserted
	m.inserted = 0
	return refund, amount, nil
}

// AddStock sets the bank's count for a denomination. Absolute set, not
// additive.
func (m *Machine) AddStock(d coin.Denomination, quantity int) error {
	if !coin.Recognized(d) {
		return fmt.Errorf("unrecognized denomination %d", d.Value())
	}
	if quantity < 0 {
		return fmt.Errorf("negative quantity %d", quantity)
	}
	m.mu.Lock()
	m.bank.SetCount(d, quantity)
	m.mu.Unlock()

	m.record(journal.Event{Kind: journal.KindBankRestock, Amount: d.Value() * quantity})
	return nil
}

// Restock upserts an item record.
func (m *Machine) Restock(selector, description string, price, quantity int) error {
	if price < 0 {
		return fmt.Errorf("negative price %d", price)
	}
	if quantity < 0 {
		return fmt.Errorf("negative quantity %d", quantity)
	}
	m.mu.Lock()
	m.inv.Restock(selector, description, price, quantity)
	m.mu.Unlock()

	m.record(journal.Event{Kind: journal.KindRestock, Selector: selector})
	return nil
}

// Reset clears the bank, the inventory and the inserted amount.
func (m *Machine) Reset() {
	m.mu.Lock()
	m.bank = coin.NewBank()
	m.inv.Reset()
	m.inserted = 0
	m.mu.Unlock()

	m.record(journal.Event{Kind: journal.KindReset})
}

// BankContents lists the bank ascending by face value.
func (m *Machine) BankContents() []coin.Holding {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bank.Contents()
}

// BankValue is the bank's total face value in minor units.
func (m *Machine) BankValue() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bank.TotalValue()
}

// Items lists the inventory sorted by selector.
func (m *Machine) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inv.Items()
}

// ItemQuantity returns the remaining stock for a selector, for
// administrative introspection.
func (m *Machine) ItemQuantity(selector string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.inv.Lookup(selector)
	if !ok {
		return 0, fmt.Errorf("lookup %q: %w", selector, ErrUnknownSelector)
	}
	return it.Quantity, nil
}

// eject removes committed change from the bank. Caller holds the lock and
// has already validated the coins against this bank.
func (m *Machine) eject(change []coin.Denomination) {
	for _, d := range change {
		if err := m.bank.Remove(d); err != nil {
			panic(fmt.Sprintf("vending: solver returned a coin the bank does not hold: %v", err))
		}
	}
}

// record writes an audit event. Called without the machine lock so a slow
// journal backend cannot stall commands. Journal failures never block
// vending; the machine state is the source of truth and the trail is best
// effort.
func (m *Machine) record(event journal.Event) {
	event.ID = uuid.NewString()
	event.OccurredAt = time.Now().UTC()
	if err := m.journal.Record(event); err != nil {
		m.log.Warn("failed to record vend event",
			zap.String("kind", event.Kind),
			zap.Error(err))
	}
}
