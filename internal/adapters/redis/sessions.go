package redisad

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"dealerhub/internal/adapters/observability"
)

// SessionStore keeps session tokens in Redis so the gateway itself stays
// stateless across requests. The token value is the username.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

// NewWithClient is used by tests to point the store at miniredis.
func NewWithClient(c *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{c: c, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, username string) (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b[:])
	if err := s.c.Set(ctx, key(token), username, s.ttl).Err(); err != nil {
		return "", err
	}
	observability.ObserveSession("create")
	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (string, bool, error) {
	v, err := s.c.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		observability.ObserveSession("miss")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	observability.ObserveSession("hit")
	return v, true, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	observability.ObserveSession("delete")
	return s.c.Del(ctx, key(token)).Err()
}

func key(token string) string { return "session:" + token }
