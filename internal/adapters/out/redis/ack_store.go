// Package redis keeps notification acknowledgements in Redis sets, one set of
// movement IDs per user.
package redis

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// DefaultAckTTL bounds how long an idle user's read set is kept.
const DefaultAckTTL = 30 * 24 * time.Hour

// AckStore implements ports.NotificationAckStore. Every write refreshes the TTL
// of the user's set.
type AckStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewAckStore wraps an existing client. A non-positive ttl means DefaultAckTTL.
func NewAckStore(client *redis.Client, keyPrefix string, ttl time.Duration) *AckStore {
	if ttl <= 0 {
		ttl = DefaultAckTTL
	}
	return &AckStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (s *AckStore) key(userID kernel.UUID) string {
	return s.keyPrefix + "notifications:read:" + userID.String()
}

func (s *AckStore) MarkRead(ctx context.Context, userID kernel.UUID, notificationIDs []kernel.UUID) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	members := make([]any, 0, len(notificationIDs))
	for _, id := range notificationIDs {
		members = append(members, id.String())
	}

	key := s.key(userID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// ReadSet returns the acknowledged movement IDs. A user without acknowledgements
// gets an empty set.
func (s *AckStore) ReadSet(ctx context.Context, userID kernel.UUID) (map[kernel.UUID]struct{}, error) {
	members, err := s.client.SMembers(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read notification acknowledgements: %w", err)
	}

	read := make(map[kernel.UUID]struct{}, len(members))
	for _, m := range members {
		id, parseErr := kernel.UUIDFromString(m)
		if parseErr != nil {
			return nil, fmt.Errorf("corrupt acknowledgement %q: %w", m, parseErr)
		}
		read[id] = struct{}{}
	}

	return read, nil
}
