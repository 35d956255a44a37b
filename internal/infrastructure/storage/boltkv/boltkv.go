// Package boltkv persists small string key-value pairs in a single bbolt
// file. It backs the session mirror that must survive client restarts.
package boltkv

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("kv")

// Store is a durable string-keyed store over one bbolt database file.
type Store struct {
	db *bolt.DB
}

// Open creates the parent directory if needed and opens (or creates) the
// database file at path. The open times out instead of blocking forever when
// another process holds the file lock.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("boltkv: create state dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltkv: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltkv: create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the value stored under key and whether the key is present.
func (s *Store) Get(key string) (string, bool, error) {
	var val string
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			val = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("boltkv: get %s: %w", key, err)
	}
	return val, found, nil
}

// SetAll stores every pair in one transaction, so a crash can never leave a
// subset of the keys behind.
func (s *Store) SetAll(values map[string]string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for k, v := range values {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("boltkv: set: %w", err)
	}
	return nil
}

// DeleteAll removes the given keys in one transaction. Absent keys are not
// an error.
func (s *Store) DeleteAll(keys ...string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("boltkv: delete: %w", err)
	}
	return nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
