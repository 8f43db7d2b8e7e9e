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

package money

import (
	"fmt"
)

// Money is a signed amount of currency in minor units (paise).
// Ledger arithmetic stays in integer paise at all times; conversion
// to rupees happens only at formatting boundaries.
type Money int64

const PaisePerRupee Money = 100

// FromRupees converts a whole rupee amount to paise.
func FromRupees(r int64) Money {
	return Money(r) * PaisePerRupee
}

// Rupees returns the whole rupee part of the amount.
func (m Money) Rupees() int64 {
	return int64(m / PaisePerRupee)
}

// Paise returns the minor unit remainder of the amount.
func (m Money) Paise() int64 {
	p := int64(m % PaisePerRupee)
	if p < 0 {
		p = -p
	}
	return p
}

// Positive reports whether the amount is strictly positive, which is
// what every mutating ledger operation requires of its argument.
func (m Money) Positive() bool {
	return m > 0
}

// String formats the amount as rupees and paise, e.g. "₹50000.00".
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
	}
	r := m.Rupees()
	if r < 0 {
		r = -r
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, r, m.Paise())
}
