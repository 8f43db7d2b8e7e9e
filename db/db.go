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

package db

// Getter wraps the read side of a database.
type Getter interface {
	// Get retrieves the value of the key, returning a nil value
	// when the key does not exist.
	Get(bucket string, key []byte) ([]byte, error)
	// GetAll retrieves the values of every key in the bucket.
	GetAll(bucket string) ([][]byte, error)
}

// Putter wraps the write side of a database.
type Putter interface {
	Put(bucket string, key, value []byte) error
}

// Database is the generic key/value operation interface the ledger
// store is built on.
type Database interface {
	NewBucket(name string) error
	Getter
	Putter
	Delete(bucket string, key []byte) error
	Close()
}
