package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store that keeps one JSON snapshot per customer
// under "cart:<customer_id>". Snapshots have no TTL; they are removed
// explicitly on checkout and logout.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func cartKey(customerID uuid.UUID) string {
	return "cart:" + customerID.String()
}

func (s *redisStore) Get(ctx context.Context, customerID uuid.UUID) (Cart, error) {
	data, err := s.client.Get(ctx, cartKey(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Cart{}, nil
		}
		return Cart{}, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return c, nil
}

func (s *redisStore) Save(ctx context.Context, customerID uuid.UUID, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(customerID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, customerID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}
