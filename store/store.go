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

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/rupeeledger/go-rupeeledger/account"
	"github.com/rupeeledger/go-rupeeledger/bank"
	"github.com/rupeeledger/go-rupeeledger/db"
	"github.com/rupeeledger/go-rupeeledger/ledger"
	"github.com/rupeeledger/go-rupeeledger/log"
)

var ErrAccountNotExist = errors.New("account not exist")

// Store persists account snapshots behind the directory. It is the
// seam for swapping in a durable backing store without touching the
// Account or Directory contracts; in-memory semantics stay
// authoritative and the store only sees checkpoints.
type Store struct {
	database db.Database
	bucket   string

	// LRU cache for decoded snapshots
	records *lru.Cache
}

// New creates a store on the given database.
func New(d db.Database) *Store {
	s := &Store{
		database: d,
		bucket:   "ACCOUNT",
	}
	err := s.database.NewBucket(s.bucket)
	if err != nil {
		log.Fatalf("create db bucket %s failed: %v", s.bucket, err)
	}
	cache, err := lru.New(10000)
	if err != nil {
		log.Fatalf("create account store LRU cache failed: %v", err)
	}
	s.records = cache
	return s
}

// SaveAccount writes the current snapshot of the account.
func (s *Store) SaveAccount(a *account.Account) error {
	snap := a.Snapshot()

	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode account failed: %v", err)
	}

	// save the snapshot in db
	err = s.database.Put(s.bucket, []byte(snap.ID), b)
	if err != nil {
		return fmt.Errorf("save account in db failed: %v", err)
	}

	// save the snapshot in cache
	s.records.Add(snap.ID, snap)

	return nil
}

// GetAccount reads the last saved snapshot of the account.
func (s *Store) GetAccount(accountID string) (account.Snapshot, error) {
	// first check the LRU cache; the cached snapshot is cloned so
	// callers never share its history slice
	if snap, ok := s.records.Get(accountID); ok {
		return cloneSnapshot(snap.(account.Snapshot)), nil
	}

	// then check database
	b, err := s.database.Get(s.bucket, []byte(accountID))
	if err != nil {
		return account.Snapshot{}, fmt.Errorf("get account %s failed: %v", accountID, err)
	}
	if b == nil {
		return account.Snapshot{}, ErrAccountNotExist
	}
	var snap account.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return account.Snapshot{}, fmt.Errorf("account %s decode failed: %v", accountID, err)
	}

	// cache the snapshot
	s.records.Add(accountID, snap)

	return cloneSnapshot(snap), nil
}

// Checkpoint saves a snapshot of every account in the directory.
func (s *Store) Checkpoint(d *bank.Directory) error {
	for _, a := range d.All() {
		if err := s.SaveAccount(a); err != nil {
			return fmt.Errorf("checkpoint account %s failed: %v", a.ID(), err)
		}
	}
	return nil
}

// LoadDirectory restores a directory from the saved snapshots. An
// empty store yields an empty directory.
func (s *Store) LoadDirectory(name string) (*bank.Directory, error) {
	vals, err := s.database.GetAll(s.bucket)
	if err != nil {
		return nil, fmt.Errorf("load accounts from db failed: %v", err)
	}

	d := bank.NewDirectory(name)
	for _, b := range vals {
		var snap account.Snapshot
		if err := json.Unmarshal(b, &snap); err != nil {
			return nil, fmt.Errorf("account decode failed: %v", err)
		}
		d.Register(account.FromSnapshot(snap))
	}
	return d, nil
}

func cloneSnapshot(snap account.Snapshot) account.Snapshot {
	history := make([]ledger.Entry, len(snap.History))
	copy(history, snap.History)
	snap.History = history
	return snap
}
