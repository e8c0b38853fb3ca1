package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStore(client), mr
}

func testSession(ttl time.Duration) *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		ID:             "tok_abc123",
		UserID:         42,
		Username:       "alice",
		Role:           domain.RoleCreator,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	sess := testSession(time.Hour)

	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session, got nil")
	}
	if got.UserID != 42 || got.Username != "alice" || got.Role != domain.RoleCreator {
		t.Fatalf("unexpected session payload: %+v", got)
	}
	if got.ID != sess.ID {
		t.Fatalf("expected id to round-trip via the key, got %q", got.ID)
	}
}

func TestSessionStore_GetMissingReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("miss must not be an error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing session, got %+v", got)
	}
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession(time.Minute)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "tok_abc123")
	if err != nil {
		t.Fatalf("get after expiry errored: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired session to be gone, got %+v", got)
	}
}

func TestSessionStore_SaveExpiredRejected(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Save(context.Background(), testSession(-time.Minute)); err == nil {
		t.Fatalf("expected error saving an already-expired session")
	}
}

func TestSessionStore_DeleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession(time.Hour)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "tok_abc123"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := store.Delete(ctx, "tok_abc123"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}

	got, err := store.Get(ctx, "tok_abc123")
	if err != nil || got != nil {
		t.Fatalf("expected deleted session to stay gone, got %+v / %v", got, err)
	}
}

func TestSessionStore_CorruptRecordTreatedAsDestroyed(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set("session:bad", "{not-json")

	got, err := store.Get(context.Background(), "bad")
	if err != nil {
		t.Fatalf("corrupt record must not surface an error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected corrupt record to read as destroyed")
	}
	if mr.Exists("session:bad") {
		t.Fatalf("expected corrupt record to be purged")
	}
}
