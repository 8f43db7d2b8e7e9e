// Copyright 2026 The go-rupeeledger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package account

import (
	"math"
	"sync"
	"time"

	"github.com/rupeeledger/go-rupeeledger/crypto"
	"github.com/rupeeledger/go-rupeeledger/ledger"
	"github.com/rupeeledger/go-rupeeledger/money"
)

// Account owns a balance, a credential and an append-only history of
// ledger entries. Balance and history are only ever mutated together,
// inside the account mutex, so the balance always equals the signed
// sum of the history.
type Account struct {
	mu sync.Mutex

	id         string
	holder     string
	credential string
	balance    money.Money
	history    []ledger.Entry
}

// New creates an account. A positive opening balance is recorded as
// an initial Deposit entry; anything else opens the account empty.
func New(id, holder, credential string, initial money.Money) *Account {
	a := &Account{
		id:         id,
		holder:     holder,
		credential: credential,
	}
	if initial.Positive() {
		a.balance = initial
		a.history = append(a.history, a.newEntry(ledger.Deposit, initial, id, "initial deposit", time.Now()))
	}
	return a
}

// newEntry builds an entry for the next history slot. Callers must
// hold the account mutex.
func (a *Account) newEntry(kind ledger.EntryKind, amount money.Money, counterparty, note string, ts time.Time) ledger.Entry {
	return ledger.Entry{
		ID:             crypto.EntryID(a.id, len(a.history), ts.UnixNano()),
		Kind:           kind,
		Amount:         amount,
		CounterpartyID: counterparty,
		Timestamp:      ts,
		Note:           note,
	}
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) Holder() string {
	return a.holder
}

func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Authenticate checks the candidate credential against the stored
// one. No side effects; lockout policy lives in the auth package.
func (a *Account) Authenticate(candidate string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credential == candidate
}

// Deposit adds the amount to the balance and records a Deposit
// entry. Once the amount is validated a deposit cannot fail for
// balance reasons.
func (a *Account) Deposit(amount money.Money) (ledger.Entry, error) {
	if !amount.Positive() {
		return ledger.Entry{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance > money.Money(math.MaxInt64)-amount {
		return ledger.Entry{}, ErrBalanceOverflow
	}

	a.balance += amount
	e := a.newEntry(ledger.Deposit, amount, a.id, "deposit to account", time.Now())
	a.history = append(a.history, e)
	return e, nil
}

// Withdraw subtracts the amount from the balance and records a
// Withdrawal entry. The sufficiency check and the mutation happen in
// one critical section.
func (a *Account) Withdraw(amount money.Money) (ledger.Entry, error) {
	if !amount.Positive() {
		return ledger.Entry{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return ledger.Entry{}, &InsufficientFundsError{Requested: amount, Available: a.balance}
	}

	a.balance -= amount
	e := a.newEntry(ledger.Withdrawal, amount, a.id, "withdrawal from account", time.Now())
	a.history = append(a.history, e)
	return e, nil
}

// Transfer moves the amount to another account, recording a
// TransferOut entry here and a TransferIn entry on the destination.
// The two entries share one ID, amount and timestamp. Both accounts
// are locked, in AccountId order, before either is touched, so no
// partial application is observable and two opposing transfers
// cannot deadlock.
func (a *Account) Transfer(to *Account, amount money.Money) (ledger.Entry, ledger.Entry, error) {
	if !amount.Positive() {
		return ledger.Entry{}, ledger.Entry{}, ErrInvalidAmount
	}
	if to == nil || to.id == a.id {
		return ledger.Entry{}, ledger.Entry{}, ErrSameAccount
	}

	first, second := a, to
	if to.id < a.id {
		first, second = to, a
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if amount > a.balance {
		return ledger.Entry{}, ledger.Entry{}, &InsufficientFundsError{Requested: amount, Available: a.balance}
	}
	if to.balance > money.Money(math.MaxInt64)-amount {
		return ledger.Entry{}, ledger.Entry{}, ErrBalanceOverflow
	}

	ts := time.Now()
	id := crypto.EntryID(a.id, len(a.history), ts.UnixNano())

	a.balance -= amount
	out := ledger.Entry{
		ID:             id,
		Kind:           ledger.TransferOut,
		Amount:         amount,
		CounterpartyID: to.id,
		Timestamp:      ts,
		Note:           "transfer to account " + to.id,
	}
	a.history = append(a.history, out)

	to.balance += amount
	in := ledger.Entry{
		ID:             id,
		Kind:           ledger.TransferIn,
		Amount:         amount,
		CounterpartyID: a.id,
		Timestamp:      ts,
		Note:           "transfer from account " + a.id,
	}
	to.history = append(to.history, in)

	return out, in, nil
}

// ChangeCredential replaces the credential when the old one matches.
// Credential changes are not money movements and leave no entry.
func (a *Account) ChangeCredential(old, new string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.credential != old {
		return false
	}
	a.credential = new
	return true
}

// History returns a copy of the full entry history in insertion
// order. The internal log is never handed out.
func (a *Account) History() []ledger.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]ledger.Entry, len(a.history))
	copy(out, a.history)
	return out
}

// HistoryByKind returns a copy of the history restricted to one
// entry kind, in insertion order.
func (a *Account) HistoryByKind(kind ledger.EntryKind) []ledger.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ledger.Filter(a.history, kind)
}

// TotalFor sums the amounts of entries of the given kind.
func (a *Account) TotalFor(kind ledger.EntryKind) money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ledger.Total(a.history, kind)
}
