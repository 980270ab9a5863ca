package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/twofasvc/domain"
)

func newSession(id string, userID uint, ttl time.Duration) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := newSession("sess1", 7, time.Hour)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, "sess1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", found.UserID)
	}
}

func TestSessionRepository_NotFound(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_ExpiredOnRead(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	// The record's own expiry is in the past even though the Redis TTL is not
	session := newSession("sess1", 7, -time.Minute)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, "sess1"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	if err := repo.Create(ctx, newSession("sess1", 7, time.Hour)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, "sess1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(ctx, "sess1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// Destroying an already-absent session is not an error
	if err := repo.Delete(ctx, "sess1"); err != nil {
		t.Errorf("second Delete() should succeed, got %v", err)
	}
}
