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

package testcase

import (
	"errors"
	"fmt"

	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/ledger"
	"github.com/rupeeledger/go-rupeeledger/money"
)

func init() {
	Register(&Deposit{})
}

// Deposit tests the correctness of a plain deposit.
type Deposit struct{}

func (d *Deposit) Desc() string {
	return "testcase: deposit"
}

func (d *Deposit) Run(dir *bank.Directory) error {
	a, err := dir.Authenticate("123456", "1234")
	if err != nil {
		return fmt.Errorf("authenticate failed: %v", err)
	}
	if a.Balance() != money.FromRupees(50000) {
		return fmt.Errorf("account with unexpected starting balance: %s", a.Balance())
	}
	before := len(a.History())

	entry, err := a.Deposit(money.FromRupees(500))
	if err != nil {
		return fmt.Errorf("deposit failed: %v", err)
	}
	if a.Balance() != money.FromRupees(50500) {
		return fmt.Errorf("deposit with unexpected balance: %s", a.Balance())
	}
	if len(a.History()) != before+1 {
		return errors.New("deposit did not append one entry")
	}
	last := a.History()[len(a.History())-1]
	if last.Kind != ledger.Deposit || last.Amount != money.FromRupees(500) {
		return errors.New("deposit entry mismatch")
	}
	if last.ID != entry.ID {
		return errors.New("deposit entry id mismatch")
	}

	// invalid amounts leave no trace
	if _, err := a.Deposit(0); err == nil {
		return errors.New("zero deposit should fail")
	}
	if len(a.History()) != before+1 {
		return errors.New("failed deposit mutated history")
	}
	return nil
}
