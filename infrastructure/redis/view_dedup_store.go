package redis

import (
	"context"
	"time"
)

const viewKeyPrefix = "views:seen:"

// ViewDedupStore remembers which viewer already counted a content row within a window
type ViewDedupStore struct {
	client *RedisClient
}

func NewViewDedupStore(client *RedisClient) *ViewDedupStore {
	return &ViewDedupStore{client: client}
}

// MarkSeen returns true the first time key is seen within window
func (s *ViewDedupStore) MarkSeen(ctx context.Context, key string, window time.Duration) (bool, error) {
	return s.client.SetNX(ctx, viewKeyPrefix+key, 1, window)
}
