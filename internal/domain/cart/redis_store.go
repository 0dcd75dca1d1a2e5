// internal/domain/cart/redis_store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisUpdateRetries = 5

// stringGetter is satisfied by both *redis.Client and *redis.Tx
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore keeps each non-empty ledger as a JSON document with a sliding TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store backed by client
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Load returns the stored ledger or an empty one on a miss
func (s *RedisStore) Load(ctx context.Context, key string) (*Ledger, error) {
	return s.read(ctx, s.client, key)
}

// Update reads, mutates and writes the ledger inside a WATCH transaction,
// retrying when another writer touched the key in between
func (s *RedisStore) Update(ctx context.Context, key string, fn func(*Ledger) error) (*Ledger, error) {
	var (
		result *Ledger
		fnErr  error
	)

	txf := func(tx *redis.Tx) error {
		current, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}

		next := current.clone()
		if fnErr = fn(next); fnErr != nil {
			result = current
			return nil
		}

		next.UpdatedAt = time.Now().UTC()
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal cart failed: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(next.Lines) == 0 {
				pipe.Del(ctx, redisKey(key))
				return nil
			}
			pipe.Set(ctx, redisKey(key), data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for i := 0; i < redisUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, redisKey(key))
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis update failed: %w", err)
		}
		return result, fnErr
	}

	return nil, ErrConflict
}

// Delete removes the stored ledger
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) read(ctx context.Context, cmd stringGetter, key string) (*Ledger, error) {
	data, err := cmd.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewLedger(key), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var ledger Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if ledger.Lines == nil {
		ledger.Lines = []CartLine{}
	}

	return &ledger, nil
}

func redisKey(key string) string {
	return fmt.Sprintf("cart:session:%s", key)
}
