package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/financeassistant/authform/internal/core/domain"
)

// IdentityKey is the fixed key holding the currently authenticated user.
const IdentityKey = "financial_user"

// IdentityStore keeps the currently authenticated user in Redis as JSON
// {"id","email"}. Every save overwrites the previous value.
type IdentityStore struct {
	client *redis.Client
	key    string
}

// NewIdentityStore creates an IdentityStore wrapping the given Redis client.
// An empty key means IdentityKey.
func NewIdentityStore(client *redis.Client, key string) *IdentityStore {
	if key == "" {
		key = IdentityKey
	}
	return &IdentityStore{client: client, key: key}
}

// Save overwrites the stored identity without expiry.
func (s *IdentityStore) Save(ctx context.Context, id domain.IdentityRecord) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

// Load returns the stored identity. It reports false when nothing is stored.
func (s *IdentityStore) Load(ctx context.Context) (domain.IdentityRecord, bool, error) {
	var id domain.IdentityRecord
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return id, false, nil
	}
	if err != nil {
		return id, false, fmt.Errorf("load identity: %w", err)
	}
	if err := json.Unmarshal(raw, &id); err != nil {
		return id, false, fmt.Errorf("decode identity: %w", err)
	}
	return id, true, nil
}
