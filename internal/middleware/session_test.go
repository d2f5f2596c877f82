package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pubudubandara/portfolio-new/internal/auth"
)

func sessionTestHandler(manager *auth.Manager) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := SessionFromContext(r.Context())
		if claims == nil {
			http.Error(w, "no claims in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return SessionAuth(manager)(next)
}

func TestSessionAuthValidCookie(t *testing.T) {
	manager := &auth.Manager{Secret: []byte("s"), TTL: time.Hour, Issuer: "portfolio"}
	token, err := manager.NewSessionToken("u1", "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/skills", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()

	sessionTestHandler(manager).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSessionAuthRejectsBadTokens(t *testing.T) {
	manager := &auth.Manager{Secret: []byte("s"), TTL: time.Hour, Issuer: "portfolio"}

	expiredManager := &auth.Manager{Secret: []byte("s"), TTL: -time.Minute, Issuer: "portfolio"}
	expired, err := expiredManager.NewSessionToken("u1", "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	otherManager := &auth.Manager{Secret: []byte("other"), TTL: time.Hour, Issuer: "portfolio"}
	forged, err := otherManager.NewSessionToken("u1", "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"malformed", "not-a-jwt"},
		{"expired", expired},
		{"wrong signature", forged},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/skills", nil)
		if tc.token != "" {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tc.token})
		}
		rec := httptest.NewRecorder()

		sessionTestHandler(manager).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}
