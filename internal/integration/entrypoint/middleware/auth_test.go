// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debt-manager/backend/internal/application/adapter"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *stubTokenService) GenerateToken(ctx context.Context, userID, email, username string) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func newAuthRouter(tokenService adapter.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(tokenService)

	engine := gin.New()
	engine.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(string(UserIDKey))})
	})
	return engine
}

func doProtected(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	service := &stubTokenService{claims: &adapter.TokenClaims{
		UserID:    "user-123",
		Email:     "alice@example.com",
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	engine := newAuthRouter(service)

	rec := doProtected(engine, "Bearer good-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"user_id":"user-123"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		serviceErr error
	}{
		{name: "missing header", authHeader: ""},
		{name: "not a bearer token", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", authHeader: "Bearer "},
		{name: "invalid token", authHeader: "Bearer bad", serviceErr: domainerror.ErrInvalidToken},
		{name: "expired token", authHeader: "Bearer old", serviceErr: domainerror.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newAuthRouter(&stubTokenService{err: tt.serviceErr})
			rec := doProtected(engine, tt.authHeader)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}
