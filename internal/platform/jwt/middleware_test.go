package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTokenWithSecret builds a token for middleware tests.
func createTokenWithSecret(secret string, userID uint, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

// TestAuthRequired_MissingBearerToken verifies that requests without a
// proper Bearer token are rejected with 401.
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			handler := AuthRequired("test-secret")
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_EmptySecret verifies that an empty signing secret is
// treated as a server misconfiguration.
func TestAuthRequired_EmptySecret(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer sometoken")

	handler := AuthRequired("")
	handler(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestAuthRequired_InvalidToken verifies that tampered or expired tokens
// are rejected with 401.
func TestAuthRequired_InvalidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-invalid"

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour)},
		{"expired token", createTokenWithSecret(testSecret, 1, -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			handler := AuthRequired(testSecret)
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_ValidToken verifies that valid tokens pass through and
// the user ID lands in the gin context.
func TestAuthRequired_ValidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-valid"

	tests := []struct {
		name   string
		userID uint
	}{
		{"user id 1", 1},
		{"user id 42", 42},
		{"user id 999", 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+createTokenWithSecret(testSecret, tt.userID, time.Hour))

			handler := AuthRequired(testSecret)
			handler(c)

			if c.IsAborted() {
				t.Fatal("expected request to pass through")
			}
			got, ok := c.Get(ContextUserID)
			if !ok {
				t.Fatal("expected user ID in context")
			}
			if got.(uint) != tt.userID {
				t.Errorf("expected user ID %d, got %v", tt.userID, got)
			}
		})
	}
}

// TestAuthRequired_TokenFromIssuer verifies that tokens minted by the
// Issuer are accepted by the middleware guarding the refresh route.
func TestAuthRequired_TokenFromIssuer(t *testing.T) {
	const testSecret = "shared-secret"

	iss := NewIssuer(testSecret, time.Hour, 72*time.Hour)
	pair, err := iss.IssueTokenPair(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	handler := AuthRequired(testSecret)
	handler(c)

	if c.IsAborted() {
		t.Fatal("expected request to pass through")
	}
	got, _ := c.Get(ContextUserID)
	if got.(uint) != 7 {
		t.Errorf("expected user ID 7, got %v", got)
	}
}
