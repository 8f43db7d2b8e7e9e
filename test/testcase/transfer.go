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
	Register(&TransferRoundTrip{})
}

// TransferRoundTrip tests the conservation of funds across a
// two-account transfer and the pairing of its two entries.
type TransferRoundTrip struct{}

func (tr *TransferRoundTrip) Desc() string {
	return "testcase: transfer round trip"
}

func (tr *TransferRoundTrip) Run(dir *bank.Directory) error {
	a := dir.Lookup("123456")
	b := dir.Lookup("234567")
	if a == nil || b == nil {
		return errors.New("fixture accounts missing")
	}
	total := a.Balance() + b.Balance()

	out, in, err := a.Transfer(b, money.FromRupees(300))
	if err != nil {
		return fmt.Errorf("transfer failed: %v", err)
	}

	if a.Balance() != money.FromRupees(49700) {
		return fmt.Errorf("source balance mismatch: %s", a.Balance())
	}
	if b.Balance() != money.FromRupees(35300) {
		return fmt.Errorf("destination balance mismatch: %s", b.Balance())
	}
	if a.Balance()+b.Balance() != total {
		return errors.New("transfer did not conserve funds")
	}

	ah := a.History()
	bh := b.History()
	lastOut := ah[len(ah)-1]
	lastIn := bh[len(bh)-1]
	if lastOut.Kind != ledger.TransferOut || lastOut.CounterpartyID != b.ID() {
		return errors.New("source entry mismatch")
	}
	if lastIn.Kind != ledger.TransferIn || lastIn.CounterpartyID != a.ID() {
		return errors.New("destination entry mismatch")
	}
	if out.ID != in.ID || lastOut.Amount != lastIn.Amount || !lastOut.Timestamp.Equal(lastIn.Timestamp) {
		return errors.New("transfer pair not consistent")
	}

	// balances still equal the signed history sums
	if a.Balance() != ledger.Sum(ah) || b.Balance() != ledger.Sum(bh) {
		return errors.New("balance diverged from history")
	}
	return nil
}
