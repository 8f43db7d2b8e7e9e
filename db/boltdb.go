package db

import (
	"errors"
	"log"
	"time"

	"github.com/boltdb/bolt"
)

type boltdb struct {
	db *bolt.DB
}

// NewBoltDB creates a new boltdb instance which can be used by multiple
// goroutines of the same process. BoltDB obtains a file lock on the data
// file so multiple processes cannot open the same database at the same
// time. It will panic if the database cannot be created or opened.
func NewBoltDB(path string) Database {
	bt, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Fatal(err)
	}
	return &boltdb{db: bt}
}

func (bt *boltdb) NewBucket(name string) error {
	if bt.db == nil {
		return errors.New("database is not initialized")
	}
	if name == "" {
		return errors.New("database bucket name is empty")
	}

	return bt.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
}

// Put writes the key/value pair to database.
func (bt *boltdb) Put(bucket string, key, value []byte) error {
	if bt.db == nil {
		return errors.New("database is not initialized")
	}

	return bt.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		return b.Put(key, value)
	})
}

// Delete deletes the key from the database.
func (bt *boltdb) Delete(bucket string, key []byte) error {
	if bt.db == nil {
		return errors.New("database is not initialized")
	}

	return bt.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		return b.Delete(key)
	})
}

// Get retrieves the value of the key from database.
func (bt *boltdb) Get(bucket string, key []byte) ([]byte, error) {
	if bt.db == nil {
		return nil, errors.New("database is not initialized")
	}

	var val []byte
	if err := bt.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		v := b.Get(key)
		if v != nil {
			// the slice is only valid inside the transaction
			val = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return val, nil
}

// GetAll retrieves the values of every key in the bucket.
func (bt *boltdb) GetAll(bucket string) ([][]byte, error) {
	if bt.db == nil {
		return nil, errors.New("database is not initialized")
	}

	var vals [][]byte
	if err := bt.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		return b.ForEach(func(k, v []byte) error {
			vals = append(vals, append([]byte(nil), v...))
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return vals, nil
}

// Close closes the underlying database.
func (bt *boltdb) Close() {
	if bt.db != nil {
		bt.db.Close()
	}
}
