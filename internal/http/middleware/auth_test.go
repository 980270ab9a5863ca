package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/twofasvc/domain"
	"github.com/you/twofasvc/internal/mocks"
)

func performWithAuth(t *testing.T, mw *AuthMW, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	var captured *gin.Context

	r := gin.New()
	r.GET("/protected", mw.WithSession(), func(c *gin.Context) {
		captured = c
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMW_ValidSession(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return &domain.Session{
			ID:        sessionID,
			UserID:    1,
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}

	mw := NewAuthMW(mocks.NewMockTokenService(), sessionRepo)
	w, c := performWithAuth(t, mw, "Bearer token_1_sess1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if userID, _ := c.Get("user_id"); userID != uint(1) {
		t.Errorf("expected user_id 1 in context, got %v", userID)
	}
	if sessionID, _ := c.Get("session_id"); sessionID != "sess1" {
		t.Errorf("expected session_id sess1 in context, got %v", sessionID)
	}
}

func TestAuthMW_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		setupMocks  func(*mocks.MockTokenService, *mocks.MockSessionRepository)
		description string
	}{
		{
			name:       "missing header",
			authHeader: "",
			setupMocks: func(*mocks.MockTokenService, *mocks.MockSessionRepository) {},
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc123",
			setupMocks: func(*mocks.MockTokenService, *mocks.MockSessionRepository) {},
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage",
			setupMocks: func(*mocks.MockTokenService, *mocks.MockSessionRepository) {},
		},
		{
			name:       "session gone after logout",
			authHeader: "Bearer token_1_sess1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository) {
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return nil, domain.ErrSessionNotFound
				}
			},
		},
		{
			name:       "session belongs to another user",
			authHeader: "Bearer token_1_sess1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository) {
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return &domain.Session{
						ID:        sessionID,
						UserID:    99,
						ExpiresAt: time.Now().Add(time.Hour),
					}, nil
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			sessionRepo := mocks.NewMockSessionRepository()
			tt.setupMocks(tokenSvc, sessionRepo)

			mw := NewAuthMW(tokenSvc, sessionRepo)
			w, _ := performWithAuth(t, mw, tt.authHeader)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
