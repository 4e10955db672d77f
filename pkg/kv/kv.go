// Package kv defines the keyed-store contracts the view repository persists
// through. Implementations must provide identical semantics across backends:
// a durable namespace per view type holding one byte record per instance key.
package kv

import "context"

// Store opens durable namespaces. A single Store may be shared by many
// repositories; each repository owns exactly one namespace name.
type Store interface {
	// Namespace opens the named namespace, creating it if absent.
	// Opening an existing namespace is idempotent.
	Namespace(ctx context.Context, name string) (Namespace, error)
}

// Namespace performs byte-keyed reads and writes within one namespace.
// Keys are used verbatim; callers must supply strings that are valid
// storage keys for the backend in use.
type Namespace interface {
	// Get returns the record stored under key. The second return is false
	// when no record exists, which is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put writes value under key, overwriting any previous record.
	Put(ctx context.Context, key string, value []byte) error
}
