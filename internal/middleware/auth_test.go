package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "unit-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(t *testing.T, required bool) *gin.Engine {
	t.Helper()
	r := gin.New()
	mw := OptionalAuth(testSecret)
	if required {
		mw = RequireAuth(testSecret)
	}
	r.GET("/probe", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "user@example.com", "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "user@example.com" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "a@b.c", "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(token, "another-secret"); err == nil {
		t.Fatal("expected error with wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, "a@b.c", "user", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	r := newAuthTestRouter(t, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	r := newAuthTestRouter(t, true)

	token, err := GenerateToken(7, "a@b.c", "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	r := newAuthTestRouter(t, true)

	token, err := GenerateToken(7, "a@b.c", "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestOptionalAuthPassesWithoutToken(t *testing.T) {
	r := newAuthTestRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":0}` {
		t.Fatalf("body = %s, want user_id 0", body)
	}
}

func TestOptionalAuthIgnoresInvalidToken(t *testing.T) {
	r := newAuthTestRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":0}` {
		t.Fatalf("body = %s, want user_id 0", body)
	}
}
