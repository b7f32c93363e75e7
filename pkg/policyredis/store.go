package policyredis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/rolegate/rolegate/pkg/policy"
)

const defaultKey = "rolegate:policy"

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKey overrides the Redis key holding the serialized table.
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Store persists the role table as a single JSON document under one Redis
// key. Each Save replaces the document wholesale, which keeps the operation
// atomic from the perspective of concurrent Loads.
type Store struct {
	client redis.UniversalClient
	key    string
}

// NewStore creates a Redis-backed store over an established client.
// The caller owns the client's lifecycle.
func NewStore(client redis.UniversalClient, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		key:    defaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and decodes the stored table. A missing key is an empty
// table, not an error.
func (s *Store) Load(ctx context.Context) (policy.Table, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return policy.Table{}, nil
		}
		return nil, err
	}

	var table policy.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Join(ErrCorruptDocument, err)
	}
	return table, nil
}

// Save serializes the table and replaces the stored document.
func (s *Store) Save(ctx context.Context, table policy.Table) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Clear deletes the stored document. Deleting an absent key is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
