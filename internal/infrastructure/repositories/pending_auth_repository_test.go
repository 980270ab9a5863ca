package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/you/twofasvc/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func newPending(token string, userID uint, ttl time.Duration) *domain.PendingAuth {
	now := time.Now()
	return &domain.PendingAuth{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestPendingAuthRepository_CreateAndFind(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewPendingAuthRepository(client, 5*time.Minute)
	ctx := context.Background()

	pending := newPending("tok1", 7, 5*time.Minute)
	if err := repo.Create(ctx, pending); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.Find(ctx, "tok1")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", found.UserID)
	}

	// Find does not consume: a second lookup still succeeds (retry path)
	if _, err := repo.Find(ctx, "tok1"); err != nil {
		t.Errorf("second Find() should succeed, got %v", err)
	}
}

func TestPendingAuthRepository_Consume(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewPendingAuthRepository(client, 5*time.Minute)
	ctx := context.Background()

	if err := repo.Create(ctx, newPending("tok1", 7, 5*time.Minute)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	consumed, err := repo.Consume(ctx, "tok1")
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if consumed.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", consumed.UserID)
	}

	// A pending attempt promotes at most once
	if _, err := repo.Consume(ctx, "tok1"); !errors.Is(err, domain.ErrPendingAuthExpired) {
		t.Errorf("second Consume() should report expired, got %v", err)
	}
	if _, err := repo.Find(ctx, "tok1"); !errors.Is(err, domain.ErrPendingAuthExpired) {
		t.Errorf("Find() after consume should report expired, got %v", err)
	}
}

func TestPendingAuthRepository_MissingToken(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewPendingAuthRepository(client, 5*time.Minute)
	ctx := context.Background()

	if _, err := repo.Find(ctx, "never-created"); !errors.Is(err, domain.ErrPendingAuthExpired) {
		t.Errorf("expected ErrPendingAuthExpired, got %v", err)
	}
	if _, err := repo.Consume(ctx, "never-created"); !errors.Is(err, domain.ErrPendingAuthExpired) {
		t.Errorf("expected ErrPendingAuthExpired, got %v", err)
	}
}

func TestPendingAuthRepository_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewPendingAuthRepository(client, time.Minute)
	ctx := context.Background()

	if err := repo.Create(ctx, newPending("tok1", 7, time.Minute)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// miniredis TTLs advance via FastForward rather than wall clock
	mr.FastForward(2 * time.Minute)

	if _, err := repo.Find(ctx, "tok1"); !errors.Is(err, domain.ErrPendingAuthExpired) {
		t.Errorf("expected ErrPendingAuthExpired after TTL, got %v", err)
	}
}

func TestPendingAuthRepository_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewPendingAuthRepository(client, 5*time.Minute)
	ctx := context.Background()

	if err := repo.Create(ctx, newPending("tok1", 7, 5*time.Minute)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Delete(ctx, "tok1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Find(ctx, "tok1"); !errors.Is(err, domain.ErrPendingAuthExpired) {
		t.Errorf("expected ErrPendingAuthExpired after delete, got %v", err)
	}

	// Deleting an absent token is not an error
	if err := repo.Delete(ctx, "tok1"); err != nil {
		t.Errorf("Delete() of absent token should succeed, got %v", err)
	}
}
