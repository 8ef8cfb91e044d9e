package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "dealerhub/internal/adapters/redis"
)

func newStore(t *testing.T, ttl time.Duration) (*redisad.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redisad.NewWithClient(c, ttl), mr
}

func TestSessionLifecycle(t *testing.T) {
	s, _ := newStore(t, time.Hour)
	ctx := context.Background()

	tok, err := s.Create(ctx, "ana")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(tok) != 32 { // 16 random bytes, hex-encoded
		t.Fatalf("unexpected token %q", tok)
	}

	user, ok, err := s.Get(ctx, tok)
	if err != nil || !ok || user != "ana" {
		t.Fatalf("get: user=%q ok=%v err=%v", user, ok, err)
	}

	if err := s.Delete(ctx, tok); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, tok); ok {
		t.Fatal("session survived delete")
	}
}

func TestSessionExpiry(t *testing.T) {
	s, mr := newStore(t, time.Minute)
	ctx := context.Background()

	tok, err := s.Create(ctx, "bo")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, err := s.Get(ctx, tok); err != nil || ok {
		t.Fatalf("expected expired session, ok=%v err=%v", ok, err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	s, _ := newStore(t, time.Hour)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok, err := s.Create(ctx, "ana")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[tok] {
			t.Fatalf("token collision: %q", tok)
		}
		seen[tok] = true
	}
}
