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

package app

import (
	"github.com/spf13/cobra"

	"github.com/rupeeledger/go-rupeeledger/auth"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/ledger"
	"github.com/rupeeledger/go-rupeeledger/log"
	"github.com/rupeeledger/go-rupeeledger/money"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough of the ledger",
	Long:  `Run a scripted walkthrough of the ledger operations against the seed accounts, without user input`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := bank.NewSeedDirectory("SBI Bank")
		authenticator := auth.NewAuthenticator(dir, auth.DefaultMaxAttempts, auth.DefaultLockout)
		session := authenticator.NewSession()

		// login as the first fixture account
		a, err := authenticator.Login(session, "123456", "1234")
		if err != nil {
			log.Fatalf("demo login failed: %v", err)
		}
		log.Infow("logged in", "holder", a.Holder(), "balance", a.Balance().String())

		// deposit
		if _, err := a.Deposit(money.FromRupees(500)); err != nil {
			log.Fatalf("demo deposit failed: %v", err)
		}
		log.Infow("deposited", "amount", money.FromRupees(500).String(), "balance", a.Balance().String())

		// a withdrawal that exceeds the balance is rejected
		b := dir.Lookup("234567")
		if _, err := b.Withdraw(money.FromRupees(40000)); err != nil {
			log.Infow("withdrawal rejected", "account", b.ID(), "reason", err.Error())
		}

		// transfer between accounts
		out, _, err := a.Transfer(b, money.FromRupees(300))
		if err != nil {
			log.Fatalf("demo transfer failed: %v", err)
		}
		log.Infow("transferred", "amount", out.Amount.String(),
			"from", a.ID(), "to", b.ID(),
			"from_balance", a.Balance().String(), "to_balance", b.Balance().String())

		// credential change, wrong old credential first
		if !a.ChangeCredential("0000", "5678") {
			log.Infow("credential change rejected", "account", a.ID())
		}
		if a.ChangeCredential("1234", "5678") {
			log.Infow("credential changed", "account", a.ID())
		}

		// history and per-kind totals
		for _, e := range a.History() {
			log.Infow("entry", "kind", e.Kind.String(), "amount", e.Amount.String(),
				"counterparty", e.CounterpartyID, "note", e.Note)
		}
		log.Infow("totals", "account", a.ID(),
			"deposits", a.TotalFor(ledger.Deposit).String(),
			"withdrawals", a.TotalFor(ledger.Withdrawal).String(),
			"transfers_out", a.TotalFor(ledger.TransferOut).String())

		authenticator.Logout(session)
		log.Infow("logged out", "state", session.State().String())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
