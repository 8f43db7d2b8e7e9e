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
	"time"

	"github.com/rupeeledger/go-rupeeledger/auth"
	"github.com/rupeeledger/go-rupeeledger/bank"
)

func init() {
	Register(&Lockout{})
}

// Lockout tests the attempt limit and the lockout expiry.
type Lockout struct{}

func (l *Lockout) Desc() string {
	return "testcase: login lockout"
}

func (l *Lockout) Run(dir *bank.Directory) error {
	authenticator := auth.NewAuthenticator(dir, 3, 30*time.Millisecond)
	session := authenticator.NewSession()

	for i := 0; i < 3; i++ {
		if _, err := authenticator.Login(session, "345678", "0000"); err != bank.ErrAuthenticationFailed {
			return errors.New("failed attempt should report authentication failure")
		}
	}
	if session.State() != auth.Locked {
		return errors.New("session should be locked after three failures")
	}
	if _, err := authenticator.Login(session, "345678", "3456"); err != auth.ErrLocked {
		return errors.New("locked session should reject attempts")
	}

	time.Sleep(60 * time.Millisecond)

	a, err := authenticator.Login(session, "345678", "3456")
	if err != nil {
		return errors.New("login after lockout expiry should succeed")
	}
	if a.ID() != "345678" || session.FailedAttempts() != 0 {
		return errors.New("session not reset after lockout expiry")
	}
	return nil
}
