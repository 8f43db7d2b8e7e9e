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

package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wunderlist/ttlcache"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/auth"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/crypto"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// session tokens expire after this long without activity
const tokenTTL = 10 * time.Minute

// Service glues the HTTP handler to the ledger core. Each account id
// gets its own login session so the lockout state machine applies
// per identity; successful logins hand out a bearer token with a
// sliding inactivity window.
type Service struct {
	dir  *bank.Directory
	auth *auth.Authenticator

	mu       sync.Mutex
	sessions map[string]*auth.Session

	// token to account id, entries expire on inactivity
	tokens *ttlcache.Cache
}

func NewService(dir *bank.Directory, authenticator *auth.Authenticator) *Service {
	return &Service{
		dir:      dir,
		auth:     authenticator,
		sessions: make(map[string]*auth.Session),
		tokens:   ttlcache.NewCache(tokenTTL),
	}
}

// session returns the login session for the account id, creating it
// on first use.
func (s *Service) session(accountID string) *auth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[accountID]
	if !ok {
		sess = s.auth.NewSession()
		s.sessions[accountID] = sess
	}
	return sess
}

// Login authenticates the account and returns a session token.
func (s *Service) Login(accountID, credential string) (string, error) {
	sess := s.session(accountID)

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.auth.Login(sess, accountID, credential)
	if err != nil {
		return "", err
	}

	token := crypto.SHA256Hash([]byte(fmt.Sprintf("%s/%d", a.ID(), time.Now().UnixNano())))
	s.tokens.Set(token, a.ID())
	return token, nil
}

// Logout returns the session to logged out. The token entry is left
// to expire; resolving it again fails because the session is no
// longer logged in.
func (s *Service) Logout(token string) {
	accountID, ok := s.tokens.Get(token)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[accountID]; ok {
		s.auth.Logout(sess)
	}
}

// Resolve maps a token back to the live account. Reading the token
// refreshes its inactivity window.
func (s *Service) Resolve(token string) (*account.Account, error) {
	accountID, ok := s.tokens.Get(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	// the session is read under the same lock Login mutates it under
	s.mu.Lock()
	sess, ok := s.sessions[accountID]
	loggedIn := ok && sess.State() == auth.LoggedIn
	s.mu.Unlock()
	if !loggedIn {
		return nil, ErrInvalidToken
	}

	a := s.dir.Lookup(accountID)
	if a == nil {
		return nil, ErrInvalidToken
	}
	return a, nil
}

func (s *Service) Directory() *bank.Directory {
	return s.dir
}
