// Package balance holds the player's token balance for the session.
package balance

import "sync/atomic"

// Ledger is the in-memory token balance, never persisted
type Ledger struct {
	amount  atomic.Int64
	credits atomic.Int64
}

// NewLedger creates a ledger starting at initial, negative values start at zero
func NewLedger(initial int64) *Ledger {
	l := &Ledger{}
	if initial > 0 {
		l.amount.Store(initial)
	}
	return l
}

// Credit adds n to the balance, non-positive amounts are ignored
func (l *Ledger) Credit(n int) {
	if n <= 0 {
		return
	}
	l.amount.Add(int64(n))
	l.credits.Add(1)
}

// Balance returns the current balance
func (l *Ledger) Balance() int64 {
	return l.amount.Load()
}

// Credits returns how many credits have been applied
func (l *Ledger) Credits() int64 {
	return l.credits.Load()
}
