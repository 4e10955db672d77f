// Package memkv provides an in-memory keyed store for tests and examples.
package memkv

import (
	"context"
	"sync"

	"github.com/wilhg/viewstore/pkg/kv"
)

// Store keeps all namespaces in process memory. Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	namespaces map[string]*namespace
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{namespaces: make(map[string]*namespace)}
}

// Namespace opens (or creates) the named namespace.
func (s *Store) Namespace(ctx context.Context, name string) (kv.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.namespaces[name]
	if !ok {
		ns = &namespace{records: make(map[string][]byte)}
		s.namespaces[name] = ns
	}
	return ns, nil
}

type namespace struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func (n *namespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (n *namespace) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	n.records[key] = stored
	return nil
}
