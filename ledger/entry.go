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

package ledger

import (
	"time"

	"github.com/rupeeledger/go-rupeeledger/money"
)

// EntryKind enumerates the kinds of money movement an account records.
type EntryKind uint8

const (
	_ EntryKind = iota // skip zero
	Deposit
	Withdrawal
	TransferOut
	TransferIn
)

func (k EntryKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case TransferOut:
		return "transfer out"
	case TransferIn:
		return "transfer in"
	}
	return "unknown"
}

// InvolvesCash reports whether the kind moves physical cash through
// the machine rather than between accounts.
func (k EntryKind) InvolvesCash() bool {
	return k == Deposit || k == Withdrawal
}

// FeeRate returns the fee fraction charged for the kind. This is a
// placeholder rate hook; nothing in the core applies it.
func (k EntryKind) FeeRate() float64 {
	switch k {
	case Withdrawal:
		return 0.01
	case TransferOut, TransferIn:
		return 0.02
	}
	return 0.0
}

// Entry is an immutable record of one completed money movement. A
// transfer writes exactly two entries, a TransferOut on the source
// and a TransferIn on the destination, sharing the same ID, amount
// and timestamp.
type Entry struct {
	ID             string
	Kind           EntryKind
	Amount         money.Money
	CounterpartyID string
	Timestamp      time.Time
	Note           string
}

// Signed returns the amount with the sign of its effect on the
// owning account's balance.
func (e *Entry) Signed() money.Money {
	switch e.Kind {
	case Deposit, TransferIn:
		return e.Amount
	default:
		return -e.Amount
	}
}

// Filter returns the entries of the given kind, preserving order.
func Filter(entries []Entry, kind EntryKind) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the amounts of entries of the given kind.
func Total(entries []Entry, kind EntryKind) money.Money {
	var sum money.Money
	for _, e := range entries {
		if e.Kind == kind {
			sum += e.Amount
		}
	}
	return sum
}

// Sum folds the signed amounts of all entries. For a consistent
// account history it equals the account balance.
func Sum(entries []Entry) money.Money {
	var sum money.Money
	for i := range entries {
		sum += entries[i].Signed()
	}
	return sum
}
