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

package bank

import (
	"errors"
	"strings"
	"sync"

	"github.com/deckarep/golang-set"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/money"
)

// ErrAuthenticationFailed covers both an unknown account id and a
// wrong credential. The two cases are deliberately indistinguishable
// to the caller.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Directory is the bank registry. It owns the set of accounts,
// resolves ids to accounts and performs credential-based lookup.
// The account set is read-mostly after startup; registration
// normally happens once at initialization.
type Directory struct {
	name string

	mu       sync.RWMutex
	accounts map[string]*account.Account

	// registered account ids
	accountIDs mapset.Set
}

// NewDirectory creates an empty directory with a display name.
func NewDirectory(name string) *Directory {
	return &Directory{
		name:       name,
		accounts:   make(map[string]*account.Account),
		accountIDs: mapset.NewSet(),
	}
}

func (d *Directory) Name() string {
	return d.name
}

// Register inserts the account unless its id is already present.
// Ids are never reassigned.
func (d *Directory) Register(a *account.Account) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.accountIDs.Contains(a.ID()) {
		return false
	}
	d.accountIDs.Add(a.ID())
	d.accounts[a.ID()] = a
	return true
}

// Lookup resolves an account id, returning nil if absent.
func (d *Directory) Lookup(id string) *account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.accounts[id]
}

// Authenticate resolves the account and checks the credential. A
// missing account and a wrong credential fail identically.
func (d *Directory) Authenticate(id, credential string) (*account.Account, error) {
	a := d.Lookup(id)
	if a == nil || !a.Authenticate(credential) {
		return nil, ErrAuthenticationFailed
	}
	return a, nil
}

// Find returns the accounts matching the predicate, in directory
// iteration order.
func (d *Directory) Find(pred func(*account.Account) bool) []*account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*account.Account
	for _, a := range d.accounts {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// SearchByHolder returns the accounts whose holder name contains the
// given text, case-insensitively.
func (d *Directory) SearchByHolder(text string) []*account.Account {
	needle := strings.ToLower(text)
	return d.Find(func(a *account.Account) bool {
		return strings.Contains(strings.ToLower(a.Holder()), needle)
	})
}

// WithBalanceAbove returns the accounts whose balance exceeds the
// given amount.
func (d *Directory) WithBalanceAbove(min money.Money) []*account.Account {
	return d.Find(func(a *account.Account) bool {
		return a.Balance() > min
	})
}

// All returns every registered account.
func (d *Directory) All() []*account.Account {
	return d.Find(func(*account.Account) bool { return true })
}

// Size returns the number of registered accounts.
func (d *Directory) Size() int {
	return d.accountIDs.Cardinality()
}
