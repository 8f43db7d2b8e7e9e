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

package auth

import (
	"errors"
	"time"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/log"
)

// ErrLocked rejects a login attempt made while the session is locked
// out. The directory is not consulted for such attempts.
var ErrLocked = errors.New("too many failed attempts, try again later")

const (
	DefaultMaxAttempts = 3
	DefaultLockout     = 10 * time.Second
)

// State enumerates the session states.
type State uint8

const (
	LoggedOut State = iota
	LoggedIn
	Locked
)

func (s State) String() string {
	switch s {
	case LoggedIn:
		return "logged in"
	case Locked:
		return "locked"
	}
	return "logged out"
}

// Session tracks the logged-in principal and the consecutive failed
// attempt count for one interactive session. It is mutated only by
// the Authenticator.
type Session struct {
	state          State
	accountID      string
	failedAttempts int
	lockedUntil    time.Time
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) AccountID() string {
	return s.accountID
}

func (s *Session) FailedAttempts() int {
	return s.failedAttempts
}

func (s *Session) LockedUntil() time.Time {
	return s.lockedUntil
}

// Authenticator is a thin layer over the directory that enforces the
// login attempt limit. Lockout policy lives here and nowhere else.
type Authenticator struct {
	dir         *bank.Directory
	maxAttempts int
	lockout     time.Duration
}

// NewAuthenticator creates an authenticator over the directory.
// Non-positive limits fall back to the defaults.
func NewAuthenticator(dir *bank.Directory, maxAttempts int, lockout time.Duration) *Authenticator {
	if dir == nil {
		log.Fatal("authenticator directory is nil")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = DefaultLockout
	}
	return &Authenticator{dir: dir, maxAttempts: maxAttempts, lockout: lockout}
}

// NewSession creates a fresh logged-out session.
func (au *Authenticator) NewSession() *Session {
	return &Session{state: LoggedOut}
}

// Login attempts to authenticate the session against the directory.
// While the session is locked, attempts are rejected before any
// credential comparison; once the lockout deadline passes the
// attempt counter resets and authentication proceeds normally.
func (au *Authenticator) Login(s *Session, id, credential string) (*account.Account, error) {
	if s.state == Locked {
		if time.Now().Before(s.lockedUntil) {
			return nil, ErrLocked
		}
		s.state = LoggedOut
		s.failedAttempts = 0
		s.lockedUntil = time.Time{}
	}

	a, err := au.dir.Authenticate(id, credential)
	if err != nil {
		s.failedAttempts++
		if s.failedAttempts >= au.maxAttempts {
			s.state = Locked
			s.lockedUntil = time.Now().Add(au.lockout)
			log.Infow("session locked out", "until", s.lockedUntil)
		}
		return nil, err
	}

	s.state = LoggedIn
	s.accountID = a.ID()
	s.failedAttempts = 0
	return a, nil
}

// Logout returns the session to the logged-out state and resets the
// attempt counter.
func (au *Authenticator) Logout(s *Session) {
	s.state = LoggedOut
	s.accountID = ""
	s.failedAttempts = 0
	s.lockedUntil = time.Time{}
}
