// Package valkey backs the CollectionStore with a local
// Redis-compatible key-value server.
package valkey

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/goquantum/booking/internal/core/domain"
)

const keyPrefix = "goquantum:collection:"

// Store implements ports.CollectionStore using Valkey.
type Store struct {
	client valkey.Client
}

// New creates a new Valkey store client.
func New(addr string) (*Store, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	return &Store{client: client}, nil
}

// Load retrieves a collection blob.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	cmd := s.client.Do(ctx, s.client.B().Get().Key(keyPrefix+key).Build())
	if err := cmd.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cmd.AsBytes()
}

// Save stores a collection blob. Collections are primary data, not a
// cache, so no TTL is set.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	cmd := s.client.Do(ctx,
		s.client.B().Set().Key(keyPrefix+key).Value(string(data)).Build(),
	)
	return cmd.Error()
}

// Close releases the client.
func (s *Store) Close() {
	s.client.Close()
}
