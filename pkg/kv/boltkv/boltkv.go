// Package boltkv provides a bbolt-backed keyed store. Namespaces map to
// buckets; records are plain key/value pairs within a bucket.
package boltkv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/wilhg/viewstore/pkg/kv"
)

// Store is a single-file bbolt database.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Namespace opens the named bucket, creating it if absent.
func (s *Store) Namespace(ctx context.Context, name string) (kv.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("namespace name is required")
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket %q: %w", name, err)
	}
	return &namespace{db: s.db, name: name}, nil
}

type namespace struct {
	db   *bbolt.DB
	name string
}

func (n *namespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	var out []byte
	err := n.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(n.name))
		if bucket == nil {
			return fmt.Errorf("bucket %q is missing", n.name)
		}
		if v := bucket.Get([]byte(key)); v != nil {
			// bbolt values are only valid inside the transaction.
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		return nil, false, nil
	}
	return out, true, nil
}

func (n *namespace) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(n.name))
		if bucket == nil {
			return fmt.Errorf("bucket %q is missing", n.name)
		}
		return bucket.Put([]byte(key), value)
	})
}
