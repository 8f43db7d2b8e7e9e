package memdb

import (
	"fmt"
	"sync"

	"github.com/rupeeledger/go-rupeeledger/db"
)

type memdb struct {
	db map[string][]byte
	sync.RWMutex
}

// New creates a memory-based key-value store which is the default
// backend and the one used for testing.
func New() db.Database {
	return &memdb{db: make(map[string][]byte)}
}

func (m *memdb) NewBucket(name string) error {
	return nil
}

func (m *memdb) key(bucket string, key []byte) string {
	return bucket + "/" + string(key)
}

// Put writes the key/value pair to database.
func (m *memdb) Put(bucket string, key, value []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return fmt.Errorf("memdb is closed")
	}

	m.db[m.key(bucket, key)] = value
	return nil
}

// Delete deletes the key from the database.
func (m *memdb) Delete(bucket string, key []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return fmt.Errorf("memdb is closed")
	}

	delete(m.db, m.key(bucket, key))
	return nil
}

// Get retrieves the value of the key from database.
func (m *memdb) Get(bucket string, key []byte) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, fmt.Errorf("memdb is closed")
	}

	val, ok := m.db[m.key(bucket, key)]
	if !ok {
		return nil, nil
	}
	return val, nil
}

// GetAll retrieves the values of every key in the bucket.
func (m *memdb) GetAll(bucket string) ([][]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, fmt.Errorf("memdb is closed")
	}

	prefix := bucket + "/"
	var vals [][]byte
	for k, v := range m.db {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// Close closes the database.
func (m *memdb) Close() {
	m.Lock()
	defer m.Unlock()
	m.db = nil
}
