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

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/money"
)

func init() {
	Register(&InsufficientWithdrawal{})
}

// InsufficientWithdrawal tests that an overdraft attempt is rejected
// without any observable mutation.
type InsufficientWithdrawal struct{}

func (w *InsufficientWithdrawal) Desc() string {
	return "testcase: insufficient withdrawal"
}

func (w *InsufficientWithdrawal) Run(dir *bank.Directory) error {
	a, err := dir.Authenticate("234567", "2345")
	if err != nil {
		return fmt.Errorf("authenticate failed: %v", err)
	}
	before := len(a.History())

	_, err = a.Withdraw(money.FromRupees(40000))
	if err == nil {
		return errors.New("overdraft withdrawal should fail")
	}
	var ife *account.InsufficientFundsError
	if !errors.As(err, &ife) {
		return fmt.Errorf("unexpected error kind: %v", err)
	}
	if ife.Requested != money.FromRupees(40000) || ife.Available != money.FromRupees(35000) {
		return fmt.Errorf("error amounts mismatch: requested %s, available %s", ife.Requested, ife.Available)
	}

	if a.Balance() != money.FromRupees(35000) {
		return fmt.Errorf("failed withdrawal changed balance: %s", a.Balance())
	}
	if len(a.History()) != before {
		return errors.New("failed withdrawal mutated history")
	}
	return nil
}
