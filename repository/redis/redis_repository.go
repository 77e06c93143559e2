package redis

import (
	"context"
	stderrors "errors"
	"time"

	redisclient "github.com/muhammadheryan/drims/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// Repository is the key-value store behind sessions and the catalog cache. Keys are namespaced
// per deployment; a missing key reads as "" with no error. Without a client every call is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct {
	namespace string
}

// NewRepository returns a Repository whose keys are prefixed with namespace.
func NewRepository(namespace string) Repository {
	return &redis{namespace: namespace}
}

func (r *redis) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, r.key(key)).Result()
	if stderrors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, r.key(key)).Err()
}

// SetSession stores the user id a token's jti belongs to.
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, r.key(sessionKey(sessionID)), userID, ttl).Err()
}

// GetSession returns the user id of a live session. Expired or revoked sessions are an error.
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, r.key(sessionKey(sessionID))).Uint64()
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, r.key(sessionKey(sessionID))).Err()
}
