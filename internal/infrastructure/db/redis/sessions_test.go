package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestRevocationStore_RevokeThenCheck(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRevocationStore(client)

	if err := store.Revoke(context.Background(), "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}

	revoked, err := store.IsRevoked(context.Background(), "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked returned error: %v", err)
	}
	if !revoked {
		t.Fatalf("expected jti-1 to be revoked")
	}
}

func TestRevocationStore_UnknownSession(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRevocationStore(client)

	revoked, err := store.IsRevoked(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("IsRevoked returned error: %v", err)
	}
	if revoked {
		t.Fatalf("unknown jti reported revoked")
	}
}

func TestRevocationStore_ExpiresWithToken(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRevocationStore(client)

	if err := store.Revoke(context.Background(), "jti-2", time.Minute); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(context.Background(), "jti-2")
	if err != nil {
		t.Fatalf("IsRevoked returned error: %v", err)
	}
	if revoked {
		t.Fatalf("revocation should lapse with the token's ttl")
	}
}

func TestRevocationStore_NonPositiveTTL(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRevocationStore(client)

	// An already-expired token needs no revocation entry.
	if err := store.Revoke(context.Background(), "jti-3", 0); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}

	revoked, err := store.IsRevoked(context.Background(), "jti-3")
	if err != nil {
		t.Fatalf("IsRevoked returned error: %v", err)
	}
	if revoked {
		t.Fatalf("expired token should not create a revocation entry")
	}
}
