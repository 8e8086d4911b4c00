package economy

// Reason is the closed set of events that move Echoes in or out of a
// ledger. Every Transaction carries one, so a replay can explain itself
// without consulting anything outside the ledger.
type Reason string

const (
	ReasonKillRiftStalker Reason = "kill_rift_stalker"
	ReasonKillSentinel    Reason = "kill_sentinel"
	ReasonFoundShard      Reason = "found_shard"
	ReasonAbilityActivate Reason = "ability_activate"
	ReasonAnchorRepair    Reason = "anchor_repair"
)

// Transaction is one signed entry in an EchoCurrency ledger. Grants carry a
// positive Amount, spends a negative one; Amount is never zero.
type Transaction struct {
	Amount int64
	Reason Reason
}

// EchoCurrency is an append-only ledger of Echo grants and spends. Balance
// is always recomputed from the ledger rather than tracked as a mutable
// counter, so the balance-equals-ledger-sum invariant can never drift
//.
type EchoCurrency struct {
	ledger []Transaction
}

// NewEchoCurrency returns an empty ledger (balance zero).
func NewEchoCurrency() *EchoCurrency {
	return &EchoCurrency{}
}

// WithBalance returns a ledger seeded with a single opening transaction of
// the given amount, tagged ReasonFoundShard; used
// by tests and save-game migration to establish a non-zero starting
// balance without breaking the ledger-sum invariant.
func WithBalance(amount int64) *EchoCurrency {
	c := NewEchoCurrency()
	if amount != 0 {
		c.ledger = append(c.ledger, Transaction{Amount: amount, Reason: ReasonFoundShard})
	}
	return c
}

// Grant records a positive transaction. amount must be > 0.
func (c *EchoCurrency) Grant(amount uint32, reason Reason) {
	if amount == 0 {
		return
	}
	c.ledger = append(c.ledger, Transaction{Amount: int64(amount), Reason: reason})
}

// Spend records a negative transaction regardless of current balance; the
// caller (ability/anchor-repair validation) is responsible for rejecting a
// spend the player can't afford before calling Spend.
func (c *EchoCurrency) Spend(amount uint32, reason Reason) {
	if amount == 0 {
		return
	}
	c.ledger = append(c.ledger, Transaction{Amount: -int64(amount), Reason: reason})
}

// Balance returns the cumulative sum of every transaction in the ledger.
func (c *EchoCurrency) Balance() int64 {
	var sum int64
	for _, t := range c.ledger {
		sum += t.Amount
	}
	return sum
}

// Count is an alias for Balance kept for parity with the source engine's
// naming (echo count == echo balance; Echoes have no separate "spent"
// pool).
func (c *EchoCurrency) Count() int64 { return c.Balance() }

// Ledger returns every transaction in insertion order. The returned slice
// is a copy; mutating it does not affect the ledger.
func (c *EchoCurrency) Ledger() []Transaction {
	out := make([]Transaction, len(c.ledger))
	copy(out, c.ledger)
	return out
}

// LastTransaction returns the most recent transaction and true, or the
// zero value and false if the ledger is empty.
func (c *EchoCurrency) LastTransaction() (Transaction, bool) {
	if len(c.ledger) == 0 {
		return Transaction{}, false
	}
	return c.ledger[len(c.ledger)-1], true
}

// CanAfford reports whether the current balance covers amount.
func (c *EchoCurrency) CanAfford(amount uint32) bool {
	return c.Balance() >= int64(amount)
}
