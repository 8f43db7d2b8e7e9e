package account

import (
	"github.com/rupeeledger/go-rupeeledger/ledger"
	"github.com/rupeeledger/go-rupeeledger/money"
)

// Snapshot is a point-in-time copy of the full account state, used
// by the store to persist and restore accounts. It shares nothing
// with the live account.
type Snapshot struct {
	ID         string         `json:"id"`
	Holder     string         `json:"holder"`
	Credential string         `json:"credential"`
	Balance    money.Money    `json:"balance"`
	History    []ledger.Entry `json:"history"`
}

// Snapshot copies the current account state.
func (a *Account) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := make([]ledger.Entry, len(a.history))
	copy(history, a.history)
	return Snapshot{
		ID:         a.id,
		Holder:     a.holder,
		Credential: a.credential,
		Balance:    a.balance,
		History:    history,
	}
}

// FromSnapshot rebuilds a live account from a persisted snapshot.
func FromSnapshot(s Snapshot) *Account {
	history := make([]ledger.Entry, len(s.History))
	copy(history, s.History)
	return &Account{
		id:         s.ID,
		holder:     s.Holder,
		credential: s.Credential,
		balance:    s.Balance,
		history:    history,
	}
}
