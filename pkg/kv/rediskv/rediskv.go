// Package rediskv provides a Redis-backed keyed store. Each namespace maps
// to one Redis hash; records are fields within that hash.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/wilhg/viewstore/pkg/kv"
)

// Store wraps a Redis client.
type Store struct {
	client *redis.Client
}

// Open connects to Redis. Accepts redis:// URLs as well as plain host:port
// addresses.
func Open(ctx context.Context, redisURL string) (*Store, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client. The caller retains ownership.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the underlying client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Namespace returns a handle over the hash named name. Redis hashes come
// into existence on first write, so opening is a pure handle construction.
func (s *Store) Namespace(ctx context.Context, name string) (kv.Namespace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("redis store is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("namespace name is required")
	}
	return &namespace{client: s.client, hash: "view:" + name}, nil
}

type namespace struct {
	client *redis.Client
	hash   string
}

func (n *namespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := n.client.HGet(ctx, n.hash, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (n *namespace) Put(ctx context.Context, key string, value []byte) error {
	return n.client.HSet(ctx, n.hash, key, value).Err()
}
