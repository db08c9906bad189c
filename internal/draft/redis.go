package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/StudioDesk/internal/domain"
)

// RedisCache stores drafts as plain keys with a TTL and tracks every key of
// a session in a set so the whole session can be dropped at once.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func sessionIndexKey(session string) string {
	return domain.SessionPrefix(session) + "index"
}

func (c *RedisCache) Save(ctx context.Context, key domain.DraftKey, payload json.RawMessage) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validatePayload(payload); err != nil {
		return err
	}

	k := key.String()
	if err := c.client.Set(ctx, k, string(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", k, err)
	}

	index := sessionIndexKey(key.Session)
	if err := c.client.SAdd(ctx, index, k).Err(); err != nil {
		return fmt.Errorf("index draft %s: %w", k, err)
	}
	if c.ttl > 0 {
		if err := c.client.Expire(ctx, index, c.ttl).Err(); err != nil {
			return fmt.Errorf("expire draft index %s: %w", index, err)
		}
	}
	return nil
}

func (c *RedisCache) Load(ctx context.Context, key domain.DraftKey) (json.RawMessage, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	k := key.String()
	val, err := c.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load draft %s: %w", k, err)
	}
	return json.RawMessage(val), true, nil
}

func (c *RedisCache) Clear(ctx context.Context, key domain.DraftKey) error {
	if err := validateKey(key); err != nil {
		return err
	}

	k := key.String()
	if err := c.client.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("clear draft %s: %w", k, err)
	}
	if err := c.client.SRem(ctx, sessionIndexKey(key.Session), k).Err(); err != nil {
		return fmt.Errorf("unindex draft %s: %w", k, err)
	}
	return nil
}

func (c *RedisCache) EndSession(ctx context.Context, session string) error {
	if strings.TrimSpace(session) == "" {
		return fmt.Errorf("%w: draft session is required", domain.ErrValidation)
	}

	index := sessionIndexKey(session)
	keys, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("list session drafts: %w", err)
	}

	if err := c.client.Del(ctx, append(keys, index)...).Err(); err != nil {
		return fmt.Errorf("end session %s: %w", session, err)
	}
	return nil
}
